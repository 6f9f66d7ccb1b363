package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"linsearch/internal/metrics"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// NewHandler wraps the router with request logging and, when m is set,
// Prometheus request tracking.
func NewHandler(router http.Handler, m *metrics.Metrics) http.Handler {
	h := router
	if m != nil {
		h = m.RequestTrackingMiddleware(func(r *http.Request) string {
			return Match(r.Method, r.URL.Path)
		}, h)
	}
	return withRequestLog(h)
}

func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		slog.Info("api request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", id,
			"remote", r.RemoteAddr,
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
