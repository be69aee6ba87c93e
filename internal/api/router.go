package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/locus/internal/matcher"
	"github.com/UnknownOlympus/locus/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Pinger reports database health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps holds the collaborators of the HTTP server.
type Deps struct {
	Log       *slog.Logger
	Matcher   *matcher.Matcher
	DB        Pinger
	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
	RateLimit int // Lookup requests per second; zero disables limiting.
}

// NewRouter wires the health, metrics and lookup endpoints.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	lookup := &LookupHandler{Matcher: deps.Matcher, Log: deps.Log, Metrics: deps.Metrics}
	if deps.RateLimit > 0 {
		lookup.Limiter = rate.NewLimiter(rate.Limit(deps.RateLimit), deps.RateLimit)
	}

	mux.Handle("/resolve", lookup)
	mux.Handle("/healthz", &HealthHandler{DB: deps.DB, Log: deps.Log})
	if deps.Registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return loggingMiddleware(deps.Log, mux)
}
