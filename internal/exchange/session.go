package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SanchitSharma10/TradingAlgos/internal/metrics"
	"github.com/SanchitSharma10/TradingAlgos/internal/trade"
)

// Conn is the subset of a websocket connection the read loop needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

// Dialer opens a connection to a stream URL. Production uses the gorilla
// dialer; tests substitute fakes.
type Dialer func(ctx context.Context, url string) (Conn, error)

// Session owns one symbol's connection lifecycle: connect, read, decode,
// reconnect after a fixed backoff. Run only returns once ctx is canceled.
type Session struct {
	symbol  string
	url     string
	backoff time.Duration
	dial    Dialer
	log     zerolog.Logger
}

func newSession(symbol, url string, backoff time.Duration, dial Dialer, log zerolog.Logger) *Session {
	return &Session{
		symbol:  symbol,
		url:     url,
		backoff: backoff,
		dial:    dial,
		log:     log.With().Str("symbol", symbol).Logger(),
	}
}

// Run loops connect → stream → backoff → reconnect until ctx is canceled.
// Stream faults never propagate; they only cost one backoff interval.
func (s *Session) Run(ctx context.Context, out chan<- trade.Event) error {
	for {
		err := s.stream(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Warn().Err(err).Msg("stream interrupted, reconnecting")
		metrics.ReconnectsTotal.WithLabelValues(s.symbol).Inc()
		select {
		case <-time.After(s.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// stream runs one connection lifetime. Any read or decode failure tears the
// whole connection down; a single malformed payload restarts the session
// rather than being skipped.
func (s *Session) stream(ctx context.Context, out chan<- trade.Event) error {
	conn, err := s.dial(ctx, s.url)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.url, err)
	}
	defer conn.Close()

	s.log.Info().Str("url", s.url).Msg("connected trade stream")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		ev, err := decodeAggTrade(s.symbol, message)
		if err != nil {
			return err
		}
		select {
		case out <- ev:
			metrics.TradesTotal.WithLabelValues(s.symbol).Inc()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
