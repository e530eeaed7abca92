// Package exchange hosts the per-symbol feed sessions and their supervisor.
package exchange

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SanchitSharma10/TradingAlgos/internal/trade"
)

// aggTradeEvent is the wire shape of one Binance aggregated trade message.
type aggTradeEvent struct {
	EventType    string `json:"e"`
	EventTime    int64  `json:"E"`
	Symbol       string `json:"s"`
	TradeID      int64  `json:"a"`
	Price        string `json:"p"`
	Quantity     string `json:"q"`
	FirstID      int64  `json:"f"`
	LastID       int64  `json:"l"`
	TradeTime    int64  `json:"T"`
	IsBuyerMaker bool   `json:"m"`
}

// decodeAggTrade converts one raw payload into a normalized trade event.
// symbol is the session's own ticker, used when the payload omits one.
func decodeAggTrade(symbol string, payload []byte) (trade.Event, error) {
	var msg aggTradeEvent
	if err := json.Unmarshal(payload, &msg); err != nil {
		return trade.Event{}, fmt.Errorf("unmarshal trade: %w", err)
	}
	price, err := decimal.NewFromString(msg.Price)
	if err != nil {
		return trade.Event{}, fmt.Errorf("parse price %q: %w", msg.Price, err)
	}
	quantity, err := decimal.NewFromString(msg.Quantity)
	if err != nil {
		return trade.Event{}, fmt.Errorf("parse quantity %q: %w", msg.Quantity, err)
	}
	if price.IsNegative() || quantity.IsNegative() {
		return trade.Event{}, fmt.Errorf("negative price or quantity in trade %d", msg.TradeID)
	}
	sym := strings.ToUpper(msg.Symbol)
	if sym == "" {
		sym = strings.ToUpper(symbol)
	}
	return trade.Event{
		Symbol:       sym,
		EventTime:    msg.EventTime,
		TradeID:      msg.TradeID,
		Price:        price,
		Quantity:     quantity,
		TradeTime:    msg.TradeTime,
		IsBuyerMaker: msg.IsBuyerMaker,
	}, nil
}

// StreamURL builds the per-symbol endpoint: <base>/<symbol>@<stream>.
func StreamURL(base, symbol, stream string) string {
	return fmt.Sprintf("%s/%s@%s", strings.TrimSuffix(base, "/"), strings.ToLower(symbol), stream)
}

// parseStreamSymbol recovers the ticker from a stream URL's last path segment.
func parseStreamSymbol(url string) string {
	segment := url
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.Index(segment, "@"); idx >= 0 {
		segment = segment[:idx]
	}
	return strings.ToUpper(segment)
}
