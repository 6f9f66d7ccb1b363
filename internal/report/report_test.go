package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linsearch/internal/benchmark"
)

var rows = []benchmark.AnalysisRow{
	{Size: 1, IterativeTimeNs: 40, RecursiveTimeNs: 55, IterativeComparisons: 1, RecursiveComparisons: 1},
	{Size: 10, IterativeTimeNs: 120, RecursiveTimeNs: 180, IterativeComparisons: 6, RecursiveComparisons: 6},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "Size,Iterative_Time_ns,Recursive_Time_ns,Iterative_Comparisons,Recursive_Comparisons\n" +
		"1,40,55,1,1\n" +
		"10,120,180,6,6\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(CSVHeader, ",")+"\n", buf.String())
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "performance_results.csv")
	require.NoError(t, WriteCSVFile(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, []string{"10", "120", "180", "6", "6"}, records[2])
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, benchmark.Run{Rows: rows})

	out := buf.String()
	assert.Contains(t, out, "Performance analysis for 2 different sizes")
	assert.Contains(t, out, "ITERATIVE NS")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"10", "120", "180", "6", "6"}, strings.Fields(lines[3]))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusPass, Classify(5, 10))
	assert.Equal(t, StatusPass, Classify(-10, 10))
	assert.Equal(t, StatusFail, Classify(10.5, 10))
	assert.Equal(t, StatusImprove, Classify(-25, 10))
}

func TestPrintComparison(t *testing.T) {
	comps := []benchmark.Comparison{
		{Size: 1, IterativeTimeDiff: 2, RecursiveTimeDiff: -3},
		{Size: 10, IterativeTimeDiff: 50, RecursiveTimeDiff: 0},
		{Size: 100, IterativeTimeDiff: -40, RecursiveTimeDiff: 30},
		{Size: 1000, IterativeTimeDiff: -40, RecursiveTimeDiff: -1, ComparisonsChanged: true},
	}

	var buf bytes.Buffer
	regressions := PrintComparison(&buf, comps, 10)
	assert.Equal(t, 2, regressions)

	out := buf.String()
	assert.Contains(t, out, "threshold 10.0%")
	assert.Contains(t, out, "+50.00%")
	assert.Contains(t, out, "(comparisons changed)")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[2], StatusPass)
	assert.Contains(t, lines[3], StatusFail)
	assert.Contains(t, lines[4], StatusFail)
	assert.Contains(t, lines[5], StatusImprove)
}

func TestPrintComparison_NoOverlap(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, PrintComparison(&buf, nil, 10))
	assert.Contains(t, buf.String(), "No sizes in common")
}
