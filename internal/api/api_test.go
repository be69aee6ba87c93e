package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UnknownOlympus/locus/internal/api"
	"github.com/UnknownOlympus/locus/internal/campus"
	"github.com/UnknownOlympus/locus/internal/matcher"
	"github.com/UnknownOlympus/locus/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newRouter(t *testing.T, rateLimit int, db api.Pinger) (http.Handler, *metrics.Metrics) {
	t.Helper()
	refs, err := campus.Default()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	return api.NewRouter(api.Deps{
		Log:       slog.Default(),
		Matcher:   matcher.New(refs),
		DB:        db,
		Registry:  reg,
		Metrics:   appMetrics,
		RateLimit: rateLimit,
	}), appMetrics
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLookup(t *testing.T) {
	router, appMetrics := newRouter(t, 0, nil)

	t.Run("match", func(t *testing.T) {
		rec := get(t, router, "/resolve?lat=34.133171&lon=108.837420")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body api.LookupResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Matched)
		assert.Equal(t, "A楼", body.Name)
		assert.Equal(t, "西安市长安区兴隆街道内环北路西安电子科技大学(南校区)", body.Address)
	})

	t.Run("no match", func(t *testing.T) {
		rec := get(t, router, "/resolve?lat=0&lon=0")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"matched":false}`, rec.Body.String())
	})

	t.Run("malformed coordinate", func(t *testing.T) {
		rec := get(t, router, "/resolve?lat=abc&lon=108.8")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "malformed coordinate")
	})

	t.Run("out of range coordinate", func(t *testing.T) {
		rec := get(t, router, "/resolve?lat=34.1&lon=181")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "longitude must be between")
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader("{}")))

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	})

	assert.InDelta(t, 2, testutil.ToFloat64(appMetrics.LookupRequests.WithLabelValues("200")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(appMetrics.LookupRequests.WithLabelValues("400")), 0)
}

func TestLookup_RateLimit(t *testing.T) {
	router, appMetrics := newRouter(t, 1, nil)

	first := get(t, router, "/resolve?lat=0&lon=0")
	second := get(t, router, "/resolve?lat=0&lon=0")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.LookupRequests.WithLabelValues("429")), 0)
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, _ := newRouter(t, 0, fakePinger{})
		rec := get(t, router, "/healthz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		router, _ := newRouter(t, 0, fakePinger{err: assert.AnError})
		rec := get(t, router, "/healthz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "DB ping failed", rec.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router, appMetrics := newRouter(t, 0, nil)
	appMetrics.RecordsProcessed.WithLabelValues(metrics.StatusMatched).Inc()

	rec := get(t, router, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "locus_records_processed_total")
}
