package web

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"linsearch/internal/benchmark"
	"linsearch/internal/metrics"
	"linsearch/internal/search"
)

// Route names, also used as the metrics route label.
const (
	RoutePreflight  = "preflight"
	RouteHealth     = "/api/health"
	RouteSearch     = "/api/search"
	RouteComplexity = "/api/complexity"
	RouteBatch      = "/api/batch"
	RouteNotFound   = "not_found"
)

// Match applies the dispatch table to a method and path.
func Match(method, path string) string {
	if method == http.MethodOptions {
		return RoutePreflight
	}
	if method != http.MethodGet {
		return RouteNotFound
	}
	switch {
	case path == RouteHealth:
		return RouteHealth
	case strings.HasPrefix(path, RouteSearch):
		return RouteSearch
	case path == RouteComplexity:
		return RouteComplexity
	case strings.HasPrefix(path, RouteBatch):
		return RouteBatch
	default:
		return RouteNotFound
	}
}

// Router serves the benchmark API. It keeps no per-request state.
type Router struct {
	runner  benchmark.Runner
	limits  benchmark.Limits
	metrics *metrics.Metrics
	version string
	now     func() time.Time
}

// NewRouter creates a router. m may be nil to disable instrumentation.
func NewRouter(runner benchmark.Runner, limits benchmark.Limits, m *metrics.Metrics, version string) *Router {
	return &Router{
		runner:  runner,
		limits:  limits,
		metrics: m,
		version: version,
		now:     time.Now,
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := ParseRequest(r)

	switch Match(req.Method, req.Path) {
	case RoutePreflight:
		writePreflight(w)
	case RouteHealth:
		rt.handleHealth(w)
	case RouteSearch:
		rt.handleSearch(w, req)
	case RouteComplexity:
		writeJSON(w, http.StatusOK, complexityBody)
	case RouteBatch:
		rt.handleBatch(w, req)
	default:
		writeNotFound(w)
	}
}

func (rt *Router) handleHealth(w http.ResponseWriter) {
	writeValue(w, healthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   rt.version,
		Timestamp: rt.now().UTC().Format(time.RFC3339),
		Endpoints: Endpoints,
	})
}

func (rt *Router) handleSearch(w http.ResponseWriter, req ParsedRequest) {
	size := rt.limits.SearchDefault
	if raw, ok := req.Query["size"]; ok {
		if n, ok := parseInt(raw); ok {
			size = n
		}
	}
	size = rt.limits.ClampSingle(size)
	alg := search.ParseAlgorithm(req.Query["algorithm"])

	res := rt.runner.RunSingle(size, alg)
	if rt.metrics != nil {
		rt.metrics.ObserveSearch(string(res.Algorithm), res.Found, res.Skipped, res.Comparisons)
	}

	writeValue(w, searchResponse{
		Success:         true,
		DataSize:        res.DataSize,
		Algorithm:       string(res.Algorithm),
		Target:          res.Target,
		ExecutionTimeNs: res.ExecutionTimeNs,
		ExecutionTimeMs: float64(res.ExecutionTimeNs) / 1e6,
		Comparisons:     res.Comparisons,
		Found:           res.Found,
		Index:           res.Index,
		Complexity:      "O(n)",
		Skipped:         res.Skipped,
	})
}

func (rt *Router) handleBatch(w http.ResponseWriter, req ParsedRequest) {
	sizes := slices.Clone(rt.limits.BatchDefaultSizes)
	if raw, ok := req.Query["sizes"]; ok {
		sizes = parseSizeList(raw)
	}
	alg := search.ParseAlgorithm(req.Query["algorithm"])

	entries := rt.runner.RunBatch(rt.limits.NormalizeBatch(sizes), alg)
	if entries == nil {
		entries = []benchmark.BatchEntry{}
	}
	if rt.metrics != nil {
		rt.metrics.ObserveBatch(len(entries))
		for _, e := range entries {
			rt.metrics.ObserveSearch(string(alg), !e.Skipped, e.Skipped, e.Comparisons)
		}
	}

	writeValue(w, batchResponse{
		Success:     true,
		Algorithm:   string(alg),
		SizesTested: len(entries),
		Results:     entries,
	})
}
