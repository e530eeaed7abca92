// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Feed describes the websocket venue the watcher subscribes to.
type Feed struct {
	Provider    string   `yaml:"provider"` // binance or stub
	BaseURL     string   `yaml:"base_url"`
	Stream      string   `yaml:"stream"`
	Symbols     []string `yaml:"symbols"`
	BackoffSecs int      `yaml:"backoff_secs"`
}

// Thresholds holds the tier cut-offs in quote-currency units. Zero values fall
// back to the built-in defaults.
type Thresholds struct {
	Notable float64 `yaml:"notable"`
	Bold    float64 `yaml:"bold"`
	Large   float64 `yaml:"large"`
	Whale   float64 `yaml:"whale"`
}

// Display tunes how qualifying trades render on the console.
type Display struct {
	Timezone    string `yaml:"timezone"`     // IANA name for trade timestamps
	QuoteSuffix string `yaml:"quote_suffix"` // stripped from tickers, e.g. USDT
}

// Tape configures the durable append-only trade log.
type Tape struct {
	Path string `yaml:"path"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App        App        `yaml:"app"`
	Feed       Feed       `yaml:"feed"`
	Thresholds Thresholds `yaml:"thresholds"`
	Display    Display    `yaml:"display"`
	Tape       Tape       `yaml:"tape"`
}

const (
	defaultBaseURL     = "wss://fstream.binance.com/ws"
	defaultStream      = "aggTrade"
	defaultBackoffSecs = 5
	defaultTimezone    = "US/Eastern"
	defaultQuoteSuffix = "USDT"
	defaultTapePath    = "binance_trades.csv"
)

// Load reads a YAML file from disk, hydrates a Config struct, and fills in
// defaults for any feed or display field left empty.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	config.applyDefaults()
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = defaultBaseURL
	}
	if c.Feed.Stream == "" {
		c.Feed.Stream = defaultStream
	}
	if c.Feed.BackoffSecs <= 0 {
		c.Feed.BackoffSecs = defaultBackoffSecs
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = defaultTimezone
	}
	if c.Display.QuoteSuffix == "" {
		c.Display.QuoteSuffix = defaultQuoteSuffix
	}
	if c.Tape.Path == "" {
		c.Tape.Path = defaultTapePath
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.MetricsAddr == "" {
		c.App.MetricsAddr = ":9109"
	}
}

// Validate rejects configurations the watcher cannot start with.
func (c *Config) Validate() error {
	if len(c.Feed.Symbols) == 0 {
		return fmt.Errorf("feed requires at least one symbol")
	}
	for _, sym := range c.Feed.Symbols {
		if sym == "" {
			return fmt.Errorf("empty symbol in feed symbol list")
		}
	}
	return nil
}
