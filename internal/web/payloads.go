package web

import (
	"linsearch/internal/benchmark"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Linear Search API"

// Endpoints lists the routes served by the router.
var Endpoints = []string{"/api/health", "/api/search", "/api/complexity", "/api/batch"}

type healthResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
	Endpoints []string `json:"endpoints"`
}

type searchResponse struct {
	Success         bool    `json:"success"`
	DataSize        int     `json:"data_size"`
	Algorithm       string  `json:"algorithm"`
	Target          string  `json:"target"`
	ExecutionTimeNs int64   `json:"execution_time_ns"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
	Comparisons     int     `json:"comparisons"`
	Found           bool    `json:"found"`
	Index           int     `json:"index"`
	Complexity      string  `json:"complexity"`
	Skipped         bool    `json:"skipped"`
}

type batchResponse struct {
	Success     bool                   `json:"success"`
	Algorithm   string                 `json:"algorithm"`
	SizesTested int                    `json:"sizes_tested"`
	Results     []benchmark.BatchEntry `json:"results"`
}

type complexityCases struct {
	BestCase    string `json:"best_case"`
	AverageCase string `json:"average_case"`
	WorstCase   string `json:"worst_case"`
}

type spaceComplexity struct {
	Iterative string `json:"iterative"`
	Recursive string `json:"recursive"`
}

type complexityResponse struct {
	Algorithm       string          `json:"algorithm"`
	Description     string          `json:"description"`
	TimeComplexity  complexityCases `json:"time_complexity"`
	SpaceComplexity spaceComplexity `json:"space_complexity"`
	Characteristics []string        `json:"characteristics"`
}

// complexityBody never changes, so it is encoded once and shared read-only.
var complexityBody = mustMarshal(complexityResponse{
	Algorithm:   "Linear Search",
	Description: "Search through list sequentially",
	TimeComplexity: complexityCases{
		BestCase:    "O(1) - element found at first position",
		AverageCase: "O(n) - element found in the middle",
		WorstCase:   "O(n) - element not found or at the end",
	},
	SpaceComplexity: spaceComplexity{
		Iterative: "O(1) - constant space",
		Recursive: "O(n) - call stack depth",
	},
	Characteristics: []string{
		"Simple to implement",
		"Works on unsorted data",
		"No preprocessing needed",
		"Good for small datasets",
	},
})
