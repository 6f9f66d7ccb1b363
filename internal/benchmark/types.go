package benchmark

import "time"

// BatchEntry is the outcome for one size of a batch request.
type BatchEntry struct {
	Size        int   `json:"size"`
	TimeNs      int64 `json:"time_ns"`
	Comparisons int   `json:"comparisons"`
	Skipped     bool  `json:"skipped,omitempty"`
}

// AnalysisRow compares both search variants at one dataset size.
type AnalysisRow struct {
	Size                 int   `json:"size"`
	IterativeTimeNs      int64 `json:"iterative_time_ns"`
	RecursiveTimeNs      int64 `json:"recursive_time_ns"`
	IterativeComparisons int   `json:"iterative_comparisons"`
	RecursiveComparisons int   `json:"recursive_comparisons"`
}

// Run represents a full performance analysis from a single execution.
type Run struct {
	ID        int64         `json:"id,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Label     string        `json:"label,omitempty"`
	Rows      []AnalysisRow `json:"rows"`
}

// AnalysisSizes is the size ladder used by a performance analysis.
var AnalysisSizes = []int{
	1, 10, 20, 30, 40, 50, 60, 70, 80, 90,
	100, 200, 300, 400, 500, 600, 700, 800, 900,
	1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000,
}
