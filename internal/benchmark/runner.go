package benchmark

import (
	"time"

	"linsearch/internal/dataset"
	"linsearch/internal/search"
)

// Runner defines the interface for running search benchmarks.
type Runner interface {
	RunSingle(size int, alg search.Algorithm) search.Result
	RunBatch(sizes []int, alg search.Algorithm) []BatchEntry
}

// LinearRunner implements Runner on freshly generated datasets.
// It holds no mutable state and is safe for concurrent use.
type LinearRunner struct {
	limits   Limits
	generate func(n int) []string
}

func NewLinearRunner(limits Limits) *LinearRunner {
	return &LinearRunner{
		limits:   limits,
		generate: dataset.Generate,
	}
}

// RunSingle clamps size, searches a new dataset for its middle element and
// returns the timed result.
func (r *LinearRunner) RunSingle(size int, alg search.Algorithm) search.Result {
	return r.run(r.limits.ClampSingle(size), alg)
}

// RunBatch runs every normalized size independently, each on its own dataset.
func (r *LinearRunner) RunBatch(sizes []int, alg search.Algorithm) []BatchEntry {
	sizes = r.limits.NormalizeBatch(sizes)

	entries := make([]BatchEntry, 0, len(sizes))
	for _, size := range sizes {
		res := r.run(size, alg)
		entries = append(entries, BatchEntry{
			Size:        size,
			TimeNs:      res.ExecutionTimeNs,
			Comparisons: res.Comparisons,
			Skipped:     res.Skipped,
		})
	}
	return entries
}

// Analyze runs both variants for every size, unclamped, and collects the
// rows into a timestamped Run.
func (r *LinearRunner) Analyze(sizes []int) Run {
	run := Run{
		Timestamp: time.Now(),
		Rows:      make([]AnalysisRow, 0, len(sizes)),
	}
	for _, size := range sizes {
		iter := r.run(size, search.Iterative)
		rec := r.run(size, search.Recursive)
		run.Rows = append(run.Rows, AnalysisRow{
			Size:                 size,
			IterativeTimeNs:      iter.ExecutionTimeNs,
			RecursiveTimeNs:      rec.ExecutionTimeNs,
			IterativeComparisons: iter.Comparisons,
			RecursiveComparisons: rec.Comparisons,
		})
	}
	return run
}

func (r *LinearRunner) run(size int, alg search.Algorithm) search.Result {
	videos := r.generate(size)
	if len(videos) == 0 {
		return search.Result{
			Algorithm: alg,
			DataSize:  0,
			Index:     -1,
		}
	}
	return search.Run(alg, videos, videos[len(videos)/2])
}
