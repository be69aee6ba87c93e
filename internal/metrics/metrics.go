package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Record outcomes used as the "status" label.
const (
	StatusMatched   = "matched"
	StatusUnmatched = "unmatched"
	StatusMalformed = "malformed"
)

type Metrics struct {
	RecordsProcessed *prometheus.CounterVec
	StoreErrors      prometheus.Counter
	ResolveSeconds   prometheus.Histogram
	MatchDistance    prometheus.Histogram
	ActiveWorkers    prometheus.Gauge
	LookupRequests   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RecordsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locus_records_processed_total",
			Help: "Total number of location records processed, by outcome.",
		}, []string{"status"}),
		StoreErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "locus_store_errors_total",
			Help: "Total number of failed writes of normalization results.",
		}),
		ResolveSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "locus_resolve_duration_seconds",
			Help:    "Duration of matching a record against the reference set.",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 8),
		}),
		MatchDistance: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "locus_match_distance_meters",
			Help:    "Distance between matched records and their reference point.",
			Buckets: prometheus.LinearBuckets(0, 25, 8),
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "locus_active_workers",
			Help: "Current number of active workers processing records.",
		}),
		LookupRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locus_lookup_requests_total",
			Help: "Total number of HTTP lookup requests, by response code.",
		}, []string{"code"}),
	}
}
