// Package trade standardizes the payload shared between feed sessions and downstream stages.
package trade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Event models one aggregated trade as reported by the feed.
type Event struct {
	Symbol       string          // uppercase canonical ticker
	EventTime    int64           // producer-assigned, epoch milliseconds
	TradeID      int64           // aggregate trade id, ordered per symbol only
	Price        decimal.Decimal // >= 0
	Quantity     decimal.Decimal // >= 0
	TradeTime    int64           // epoch milliseconds
	IsBuyerMaker bool            // true means the buyer rested, i.e. sell pressure
}

// Notional returns Price × Quantity. It is always derived from the two source
// fields so a stored copy can never drift from them.
func (e Event) Notional() decimal.Decimal { return e.Price.Mul(e.Quantity) }

// Time returns the trade time as a time.Time.
func (e Event) Time() time.Time { return time.UnixMilli(e.TradeTime) }

// DisplaySymbol strips a known quote-currency suffix for terse console output,
// e.g. BTCUSDT -> BTC.
func (e Event) DisplaySymbol(quote string) string {
	return strings.TrimSuffix(e.Symbol, strings.ToUpper(quote))
}
