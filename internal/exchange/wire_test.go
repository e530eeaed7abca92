package exchange

import (
	"testing"
)

func TestDecodeAggTrade(t *testing.T) {
	payload := []byte(`{"e":"aggTrade","E":1700000000500,"s":"BTCUSDT","a":42,"p":"60000.10","q":"0.500","f":1,"l":2,"T":1700000000499,"m":true}`)
	ev, err := decodeAggTrade("btcusdt", payload)
	if err != nil {
		t.Fatalf("decodeAggTrade returned error: %v", err)
	}
	if ev.Symbol != "BTCUSDT" || ev.TradeID != 42 {
		t.Fatalf("unexpected identity: %+v", ev)
	}
	if ev.EventTime != 1700000000500 || ev.TradeTime != 1700000000499 {
		t.Fatalf("unexpected timestamps: %+v", ev)
	}
	if ev.Price.String() != "60000.1" || ev.Quantity.String() != "0.5" {
		t.Fatalf("unexpected price/quantity: %s %s", ev.Price, ev.Quantity)
	}
	if !ev.IsBuyerMaker {
		t.Fatalf("expected maker flag set")
	}
	if got := ev.Notional().String(); got != "30000.05" {
		t.Fatalf("unexpected notional: %s", got)
	}
}

func TestDecodeAggTradeFallsBackToSessionSymbol(t *testing.T) {
	payload := []byte(`{"E":1,"a":1,"p":"1","q":"1","T":1,"m":false}`)
	ev, err := decodeAggTrade("dogeusdt", payload)
	if err != nil {
		t.Fatalf("decodeAggTrade returned error: %v", err)
	}
	if ev.Symbol != "DOGEUSDT" {
		t.Fatalf("expected session symbol fallback, got %s", ev.Symbol)
	}
}

func TestDecodeAggTradeRejectsBadPayloads(t *testing.T) {
	cases := map[string]string{
		"malformed json":    `{"E":`,
		"bad price":         `{"E":1,"a":1,"p":"not-a-number","q":"1","T":1,"m":false}`,
		"bad quantity":      `{"E":1,"a":1,"p":"1","q":"","T":1,"m":false}`,
		"negative price":    `{"E":1,"a":1,"p":"-1","q":"1","T":1,"m":false}`,
		"negative quantity": `{"E":1,"a":1,"p":"1","q":"-2","T":1,"m":false}`,
	}
	for name, payload := range cases {
		if _, err := decodeAggTrade("btcusdt", []byte(payload)); err == nil {
			t.Fatalf("%s: expected decode error", name)
		}
	}
}

func TestStreamURL(t *testing.T) {
	got := StreamURL("wss://fstream.binance.com/ws/", "BTCUSDT", "aggTrade")
	if got != "wss://fstream.binance.com/ws/btcusdt@aggTrade" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestParseStreamSymbol(t *testing.T) {
	cases := map[string]string{
		"wss://fstream.binance.com/ws/btcusdt@aggTrade": "BTCUSDT",
		"/ethusdt@aggTrade": "ETHUSDT",
		"dogeusdt":          "DOGEUSDT",
		"":                  "",
	}
	for url, expected := range cases {
		if got := parseStreamSymbol(url); got != expected {
			t.Fatalf("url %q: expected %s got %s", url, expected, got)
		}
	}
}
