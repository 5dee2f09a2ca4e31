package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes used as the "outcome" label.
const (
	outcomeFound     = "found"
	outcomeNoPath    = "no_path"
	outcomeCancelled = "cancelled"
	outcomeError     = "error"
)

// metrics holds the benchmark collectors, registered on one registry.
type metrics struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	hops     *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathbench",
			Name:      "searches_total",
			Help:      "Completed searches by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathbench",
			Name:      "search_duration_seconds",
			Help:      "Wall time of one FindPath call.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 16),
		}, []string{"algorithm"}),
		hops: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathbench",
			Name:      "path_hops",
			Help:      "Edges on each path found.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
	}
}

// observe records one search. hops is ignored unless outcome is found.
func (m *metrics) observe(algorithm, outcome string, elapsed time.Duration, hops int) {
	m.searches.WithLabelValues(algorithm, outcome).Inc()
	if outcome == outcomeCancelled || outcome == outcomeError {
		return
	}
	m.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome == outcomeFound {
		m.hops.WithLabelValues(algorithm).Observe(float64(hops))
	}
}

// serveMetrics exposes reg on addr under /metrics until the returned
// shutdown func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (shutdown func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.String("error", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
