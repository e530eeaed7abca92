package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "trades_total", Help: "Count of trades ingested from the feed"},
		[]string{"symbol"},
	)
	ClassifiedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "classified_total", Help: "Trades by assigned size tier"},
		[]string{"symbol", "tier"},
	)
	ReconnectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reconnects_total", Help: "Feed session reconnect attempts"},
		[]string{"symbol"},
	)
	SinkErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "sink_errors_total", Help: "Failed appends to the trade tape"},
	)
)

func init() {
	prometheus.MustRegister(TradesTotal, ClassifiedTotal, ReconnectsTotal, SinkErrorsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
