package benchmark

import "fmt"

type Comparison struct {
	Size               int
	IterativeTimeDiff  float64 // Percentage change
	RecursiveTimeDiff  float64 // Percentage change
	ComparisonsChanged bool
	Prev               AnalysisRow
	Curr               AnalysisRow
}

// Compare matches rows by size and returns the change for every size
// present in both runs, in the order of curr.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[int]AnalysisRow, len(prev.Rows))
	for _, r := range prev.Rows {
		prevMap[r.Size] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Rows {
		p, ok := prevMap[c.Size]
		if !ok {
			continue
		}
		comparisons = append(comparisons, Comparison{
			Size:               c.Size,
			IterativeTimeDiff:  percentChange(p.IterativeTimeNs, c.IterativeTimeNs),
			RecursiveTimeDiff:  percentChange(p.RecursiveTimeNs, c.RecursiveTimeNs),
			ComparisonsChanged: p.IterativeComparisons != c.IterativeComparisons || p.RecursiveComparisons != c.RecursiveComparisons,
			Prev:               p,
			Curr:               c,
		})
	}
	return comparisons
}

func percentChange(prev, curr int64) float64 {
	if prev <= 0 {
		return 0
	}
	return float64(curr-prev) / float64(prev) * 100
}

func (c Comparison) String() string {
	return fmt.Sprintf("size %d: %+.2f%% iterative, %+.2f%% recursive", c.Size, c.IterativeTimeDiff, c.RecursiveTimeDiff)
}
