// Package search implements the instrumented sequential search that the
// benchmarks time.
package search

import (
	"strings"
	"time"
)

// Algorithm selects the search variant.
type Algorithm string

const (
	Iterative Algorithm = "iterative"
	Recursive Algorithm = "recursive"
)

// RecursiveLimit is the largest input the recursive variant will scan.
// Larger inputs produce a skipped result to bound call depth.
const RecursiveLimit = 10000

// ParseAlgorithm maps a user supplied name onto an Algorithm.
// Unknown names fall back to Iterative.
func ParseAlgorithm(name string) Algorithm {
	if strings.EqualFold(strings.TrimSpace(name), string(Recursive)) {
		return Recursive
	}
	return Iterative
}

// Result is the outcome of one timed search call.
type Result struct {
	Algorithm       Algorithm `json:"algorithm"`
	Target          string    `json:"target"`
	DataSize        int       `json:"data_size"`
	Comparisons     int       `json:"comparisons"`
	Index           int       `json:"index"`
	Found           bool      `json:"found"`
	ExecutionTimeNs int64     `json:"execution_time_ns"`
	Skipped         bool      `json:"skipped,omitempty"`
}

// LinearIterative scans data from the front and returns the position of the
// first element equal to target together with the number of equality tests
// performed. It returns -1 and len(data) when target is absent.
func LinearIterative(data []string, target string) (index, comparisons int) {
	for i := range data {
		comparisons++
		if data[i] == target {
			return i, comparisons
		}
	}
	return -1, comparisons
}

// LinearRecursive is LinearIterative expressed as recursion over the index.
// Callers are expected to respect RecursiveLimit.
func LinearRecursive(data []string, target string) (index, comparisons int) {
	index = recurse(data, target, 0, &comparisons)
	return index, comparisons
}

func recurse(data []string, target string, idx int, comps *int) int {
	if idx >= len(data) {
		return -1
	}
	*comps++
	if data[idx] == target {
		return idx
	}
	return recurse(data, target, idx+1, comps)
}

// Run executes the selected variant and measures only the scan itself.
func Run(alg Algorithm, data []string, target string) Result {
	res := Result{
		Algorithm: alg,
		Target:    target,
		DataSize:  len(data),
		Index:     -1,
	}

	if alg == Recursive && len(data) > RecursiveLimit {
		res.Skipped = true
		return res
	}

	scan := LinearIterative
	if alg == Recursive {
		scan = LinearRecursive
	}

	start := time.Now()
	res.Index, res.Comparisons = scan(data, target)
	res.ExecutionTimeNs = time.Since(start).Nanoseconds()
	res.Found = res.Index >= 0

	return res
}
