package benchmark

// Limits bounds the sizes accepted by single and batch runs.
type Limits struct {
	SearchMin     int
	SearchMax     int
	SearchDefault int

	BatchMin          int
	BatchMax          int
	BatchFallback     int // replaces batch sizes below BatchMin
	BatchMaxCount     int
	BatchDefaultSizes []int
}

// DefaultLimits returns the documented defaults.
func DefaultLimits() Limits {
	return Limits{
		SearchMin:         10,
		SearchMax:         100000,
		SearchDefault:     1000,
		BatchMin:          1,
		BatchMax:          50000,
		BatchFallback:     10,
		BatchMaxCount:     10,
		BatchDefaultSizes: []int{10, 100, 500, 1000, 5000},
	}
}

// ClampSingle constrains a single-run size to [SearchMin, SearchMax].
func (l Limits) ClampSingle(size int) int {
	if size > l.SearchMax {
		return l.SearchMax
	}
	if size < l.SearchMin {
		return l.SearchMin
	}
	return size
}

// ClampBatch constrains one batch size. Values below BatchMin become
// BatchFallback.
func (l Limits) ClampBatch(size int) int {
	if size > l.BatchMax {
		return l.BatchMax
	}
	if size < l.BatchMin {
		return l.BatchFallback
	}
	return size
}

// NormalizeBatch truncates sizes to BatchMaxCount and clamps every entry.
// The input slice is not modified.
func (l Limits) NormalizeBatch(sizes []int) []int {
	if l.BatchMaxCount >= 0 && len(sizes) > l.BatchMaxCount {
		sizes = sizes[:l.BatchMaxCount]
	}
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = l.ClampBatch(s)
	}
	return out
}
