// Package volume accumulates traded notional into per-second buckets.
package volume

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Bucket keys one second of one symbol's flow on one side of the tape.
type Bucket struct {
	Symbol       string
	Second       int64 // trade time truncated to whole seconds
	IsBuyerMaker bool
}

// Aggregator keeps a running notional sum per bucket. Sums only ever grow and
// buckets are never evicted; the tool targets bounded interactive sessions.
type Aggregator struct {
	mu      sync.Mutex
	buckets map[Bucket]decimal.Decimal
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{buckets: make(map[Bucket]decimal.Decimal)}
}

// Record adds notional into the bucket for (symbol, second, isBuyerMaker).
// Safe for concurrent use by multiple feed sessions.
func (a *Aggregator) Record(symbol string, second int64, isBuyerMaker bool, notional decimal.Decimal) {
	key := Bucket{Symbol: symbol, Second: second, IsBuyerMaker: isBuyerMaker}
	a.mu.Lock()
	a.buckets[key] = a.buckets[key].Add(notional)
	a.mu.Unlock()
}

// Read returns the current sum for a bucket, or zero when absent.
func (a *Aggregator) Read(b Bucket) decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buckets[b]
}

// Snapshot returns a copy of every bucket sum.
func (a *Aggregator) Snapshot() map[Bucket]decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[Bucket]decimal.Decimal, len(a.buckets))
	for k, v := range a.buckets {
		out[k] = v
	}
	return out
}
