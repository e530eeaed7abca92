package exchange

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SanchitSharma10/TradingAlgos/internal/trade"
)

const (
	// ProviderStub emits deterministic synthetic trades (useful for tests/offline work).
	ProviderStub = "stub"
	// ProviderBinance streams live aggregated trades from Binance futures websockets.
	ProviderBinance = "binance"
)

// DefaultBackoff is the fixed wait between reconnect attempts. No growth, no
// jitter: the reference behavior simply pauses and tries again.
const DefaultBackoff = 5 * time.Second

// Options configures a Supervisor.
type Options struct {
	Provider string
	BaseURL  string
	Stream   string // e.g. aggTrade
	Symbols  []string
	Backoff  time.Duration
	Dial     Dialer // optional override; nil picks the provider's dialer
	Log      zerolog.Logger
}

// Supervisor owns one session per tracked symbol and keeps all of them
// running until the context is canceled.
type Supervisor struct {
	sessions []*Session
	backoff  time.Duration
	log      zerolog.Logger
}

// NewSupervisor builds one session per symbol. Symbols are deduplicated and
// sorted for determinism; an empty list is a startup error.
func NewSupervisor(opts Options) (*Supervisor, error) {
	symbols := normalizeSymbols(opts.Symbols)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("supervisor requires at least one symbol")
	}
	stream := opts.Stream
	if stream == "" {
		stream = "aggTrade"
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	dial := opts.Dial
	if dial == nil {
		switch strings.ToLower(opts.Provider) {
		case ProviderStub:
			dial = stubDial
		case ProviderBinance, "":
			dial = gorillaDial
		default:
			return nil, fmt.Errorf("unknown feed provider %q", opts.Provider)
		}
	}

	sup := &Supervisor{backoff: backoff, log: opts.Log}
	for _, sym := range symbols {
		url := StreamURL(opts.BaseURL, sym, stream)
		sup.sessions = append(sup.sessions, newSession(sym, url, backoff, dial, opts.Log))
	}
	return sup, nil
}

// Symbols returns the tracked tickers in their canonical order.
func (s *Supervisor) Symbols() []string {
	out := make([]string, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = sess.symbol
	}
	return out
}

// Run starts every session concurrently and blocks until ctx is canceled.
// Sessions are built to run forever; if one still returns, the supervisor
// logs it and restarts that session after the backoff instead of orphaning
// the symbol or taking down its siblings.
func (s *Supervisor) Run(ctx context.Context, out chan<- trade.Event) error {
	var wg sync.WaitGroup
	for _, sess := range s.sessions {
		wg.Add(1)
		go func(sess *Session) {
			defer wg.Done()
			for {
				err := sess.Run(ctx, out)
				if ctx.Err() != nil {
					return
				}
				s.log.Error().Err(err).Str("symbol", sess.symbol).Msg("session terminated unexpectedly, restarting")
				select {
				case <-time.After(s.backoff):
				case <-ctx.Done():
					return
				}
			}
		}(sess)
	}
	wg.Wait()
	return ctx.Err()
}

func normalizeSymbols(symbols []string) []string {
	unique := make(map[string]struct{}, len(symbols))
	for _, sym := range symbols {
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if sym == "" {
			continue
		}
		unique[sym] = struct{}{}
	}
	out := make([]string, 0, len(unique))
	for sym := range unique {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
