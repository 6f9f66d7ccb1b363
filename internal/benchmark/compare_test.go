package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	prev := Run{
		Rows: []AnalysisRow{
			{Size: 10, IterativeTimeNs: 100, RecursiveTimeNs: 200, IterativeComparisons: 6, RecursiveComparisons: 6},
			{Size: 20, IterativeTimeNs: 200},
		},
	}
	curr := Run{
		Rows: []AnalysisRow{
			{Size: 10, IterativeTimeNs: 110, RecursiveTimeNs: 150, IterativeComparisons: 6, RecursiveComparisons: 6},
			{Size: 30, IterativeTimeNs: 300},
		},
	}

	comps := Compare(prev, curr)
	require.Len(t, comps, 1) // Only size 10 matches

	c := comps[0]
	assert.Equal(t, 10, c.Size)
	assert.InDelta(t, 10.0, c.IterativeTimeDiff, 0.01)
	assert.InDelta(t, -25.0, c.RecursiveTimeDiff, 0.01)
	assert.False(t, c.ComparisonsChanged)
	assert.Contains(t, c.String(), "size 10")
}

func TestCompare_ZeroBaseline(t *testing.T) {
	prev := Run{Rows: []AnalysisRow{{Size: 20000}}}
	curr := Run{Rows: []AnalysisRow{{Size: 20000, IterativeTimeNs: 50, IterativeComparisons: 10001}}}

	comps := Compare(prev, curr)
	require.Len(t, comps, 1)
	assert.Zero(t, comps[0].IterativeTimeDiff)
	assert.True(t, comps[0].ComparisonsChanged)
}
