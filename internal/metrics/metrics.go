package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics represents the collection of all Prometheus metrics
type Metrics struct {
	// Standard metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Search metrics
	SearchesTotal     *prometheus.CounterVec
	SearchComparisons prometheus.Histogram
	BatchEntries      prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates all metrics and registers them, plus the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry creates all metrics and registers them on reg.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{gatherer: gatherer}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linsearch_searches_total",
			Help: "Total number of timed searches",
		},
		[]string{"algorithm", "outcome"},
	)

	m.SearchComparisons = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linsearch_search_comparisons",
			Help:    "Equality tests performed per search",
			Buckets: prometheus.ExponentialBuckets(1, 10, 6),
		},
	)

	m.BatchEntries = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linsearch_batch_entries",
			Help:    "Number of sizes run per batch request",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchesTotal,
		m.SearchComparisons,
		m.BatchEntries,
	)

	return m
}

// ObserveSearch records one search outcome.
func (m *Metrics) ObserveSearch(algorithm string, found, skipped bool, comparisons int) {
	outcome := "not_found"
	switch {
	case skipped:
		outcome = "skipped"
	case found:
		outcome = "found"
	}
	m.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
	if !skipped {
		m.SearchComparisons.Observe(float64(comparisons))
	}
}

// ObserveBatch records the size of one batch request.
func (m *Metrics) ObserveBatch(entries int) {
	m.BatchEntries.Observe(float64(entries))
}

// RouteFunc maps a request onto a bounded route label.
type RouteFunc func(r *http.Request) string

// RequestTrackingMiddleware records request count and latency for next.
// route keeps label cardinality bounded; nil falls back to the URL path.
func (m *Metrics) RequestTrackingMiddleware(route RouteFunc, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		label := r.URL.Path
		if route != nil {
			label = route(r)
		}
		m.HTTPRequestsTotal.WithLabelValues(r.Method, label, strconv.Itoa(rw.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, label).Observe(time.Since(start).Seconds())
	})
}

// responseWriter is a wrapper to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Handler returns the Prometheus HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
