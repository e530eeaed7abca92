// Binary whales tails per-symbol trade streams and surfaces the large prints.
package main

import (
	"context"
	"errors"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/SanchitSharma10/TradingAlgos/internal/classify"
	"github.com/SanchitSharma10/TradingAlgos/internal/config"
	"github.com/SanchitSharma10/TradingAlgos/internal/exchange"
	"github.com/SanchitSharma10/TradingAlgos/internal/metrics"
	"github.com/SanchitSharma10/TradingAlgos/internal/sink"
	"github.com/SanchitSharma10/TradingAlgos/internal/trade"
	"github.com/SanchitSharma10/TradingAlgos/internal/util"
	"github.com/SanchitSharma10/TradingAlgos/internal/volume"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	_ = godotenv.Load()

	log := util.NewLogger("info")

	configPath := os.Getenv("WHALES_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	log = util.NewLogger(cfg.App.LogLevel)

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	recorder, err := sink.NewRecorder(cfg.Tape.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Tape.Path).Msg("open trade tape")
	}
	defer recorder.Close()

	printer, err := sink.NewPrinter(os.Stdout, cfg.Display.Timezone, cfg.Display.QuoteSuffix)
	if err != nil {
		log.Fatal().Err(err).Msg("build console printer")
	}

	thresholds := classify.NewThresholds(
		cfg.Thresholds.Notable,
		cfg.Thresholds.Bold,
		cfg.Thresholds.Large,
		cfg.Thresholds.Whale,
	)
	agg := volume.NewAggregator()

	sup, err := exchange.NewSupervisor(exchange.Options{
		Provider: cfg.Feed.Provider,
		BaseURL:  cfg.Feed.BaseURL,
		Stream:   cfg.Feed.Stream,
		Symbols:  cfg.Feed.Symbols,
		Backoff:  time.Duration(cfg.Feed.BackoffSecs) * time.Second,
		Log:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build feed supervisor")
	}

	events := make(chan trade.Event, 1024)
	go func() {
		if err := sup.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("feed supervisor stopped")
			cancel()
		}
	}()

	log.Info().Strs("symbols", sup.Symbols()).Str("tape", cfg.Tape.Path).Msg("whale watcher started")

	// Single consumer goroutine: it alone touches the aggregator, tape, and
	// console, so sessions never contend on the sink. A failed tape append is
	// logged and counted here; it must not ripple back into a reconnect.
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		case ev := <-events:
			decision := thresholds.Classify(ev.Notional(), ev.IsBuyerMaker)
			agg.Record(ev.Symbol, ev.TradeTime/1000, ev.IsBuyerMaker, ev.Notional())
			metrics.ClassifiedTotal.WithLabelValues(ev.Symbol, string(decision.Tier)).Inc()
			if decision.Tier == classify.Suppressed {
				continue
			}
			printer.Emit(ev, decision)
			if err := recorder.Append(ev); err != nil {
				metrics.SinkErrorsTotal.Inc()
				log.Error().Err(err).Str("symbol", ev.Symbol).Msg("tape append failed")
			}
		}
	}
}
