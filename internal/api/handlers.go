package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/locus/internal/geo"
	"github.com/UnknownOlympus/locus/internal/matcher"
	"github.com/UnknownOlympus/locus/internal/metrics"
	"golang.org/x/time/rate"
)

// LookupResponse is the body returned by /resolve.
type LookupResponse struct {
	Matched        bool    `json:"matched"`
	Name           string  `json:"name,omitempty"`
	Address        string  `json:"address,omitempty"`
	DistanceMeters float64 `json:"distance_m,omitempty"`
}

// LookupHandler resolves a coordinate from the query string against the reference set.
// Requests beyond the optional Limiter get 429 and are counted like any other response.
type LookupHandler struct {
	Matcher *matcher.Matcher
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Limiter *rate.Limiter
}

func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.serve(w, r)
	if h.Metrics != nil {
		h.Metrics.LookupRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	}
}

func (h *LookupHandler) serve(w http.ResponseWriter, r *http.Request) int {
	if h.Limiter != nil && !h.Limiter.Allow() {
		w.Header().Set("Retry-After", "1")
		writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
		return http.StatusTooManyRequests
	}

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return http.StatusMethodNotAllowed
	}

	query := r.URL.Query()
	point, err := geo.ParsePoint(query.Get("lat"), query.Get("lon"), "")
	if err != nil {
		h.Log.DebugContext(r.Context(), "Rejected lookup coordinate", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return http.StatusBadRequest
	}

	resp := LookupResponse{}
	if match, ok := h.Matcher.Lookup(point); ok {
		resp = LookupResponse{
			Matched:        true,
			Name:           match.Name,
			Address:        match.Label,
			DistanceMeters: match.DistanceMeters,
		}
	}

	writeJSON(w, r, http.StatusOK, resp)
	return http.StatusOK
}

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	DB  Pinger
	Log *slog.Logger
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Log.DebugContext(r.Context(), "Performing health checks...")
	status, body := http.StatusOK, "OK"
	if h.DB != nil {
		if err := h.DB.Ping(r.Context()); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.Log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
	h.Log.DebugContext(r.Context(), "Health checks completed", "status", status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
