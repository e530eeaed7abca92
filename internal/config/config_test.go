package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "whales-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected App.LogLevel: %s", cfg.App.LogLevel)
	}
	if cfg.Feed.Provider != "binance" {
		t.Fatalf("unexpected Feed.Provider: %s", cfg.Feed.Provider)
	}
	if cfg.Feed.BaseURL != "wss://fstream.binance.com/ws" {
		t.Fatalf("unexpected Feed.BaseURL: %s", cfg.Feed.BaseURL)
	}
	if cfg.Feed.Stream != "aggTrade" {
		t.Fatalf("unexpected Feed.Stream: %s", cfg.Feed.Stream)
	}
	if len(cfg.Feed.Symbols) != 1 || cfg.Feed.Symbols[0] != "BTCUSDT" {
		t.Fatalf("expected BTCUSDT symbol, got %+v", cfg.Feed.Symbols)
	}
	if cfg.Feed.BackoffSecs != 5 {
		t.Fatalf("unexpected backoff: %d", cfg.Feed.BackoffSecs)
	}
	if cfg.Thresholds.Notable != 15000 || cfg.Thresholds.Whale != 500000 {
		t.Fatalf("unexpected thresholds: %+v", cfg.Thresholds)
	}
	if cfg.Display.Timezone != "US/Eastern" {
		t.Fatalf("unexpected timezone: %s", cfg.Display.Timezone)
	}
	if cfg.Display.QuoteSuffix != "USDT" {
		t.Fatalf("unexpected quote suffix: %s", cfg.Display.QuoteSuffix)
	}
	if cfg.Tape.Path != "binance_trades.csv" {
		t.Fatalf("unexpected tape path: %s", cfg.Tape.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := &Config{Feed: Feed{Symbols: []string{"ETHUSDT"}}}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Feed.BaseURL != "wss://fstream.binance.com/ws" {
		t.Fatalf("expected default base URL, got %s", loaded.Feed.BaseURL)
	}
	if loaded.Feed.Stream != "aggTrade" {
		t.Fatalf("expected default stream, got %s", loaded.Feed.Stream)
	}
	if loaded.Feed.BackoffSecs != 5 {
		t.Fatalf("expected default backoff 5, got %d", loaded.Feed.BackoffSecs)
	}
	if loaded.Display.Timezone != "US/Eastern" {
		t.Fatalf("expected default timezone, got %s", loaded.Display.Timezone)
	}
	if loaded.Tape.Path != "binance_trades.csv" {
		t.Fatalf("expected default tape path, got %s", loaded.Tape.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateRejectsEmptySymbols(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty symbol list")
	}
	cfg.Feed.Symbols = []string{""}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for blank symbol")
	}
}
