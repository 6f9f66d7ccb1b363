package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"linsearch/internal/benchmark"
)

// CSVHeader is the first record of every exported analysis.
var CSVHeader = []string{
	"Size",
	"Iterative_Time_ns",
	"Recursive_Time_ns",
	"Iterative_Comparisons",
	"Recursive_Comparisons",
}

// WriteCSV writes one record per analysis row after the header.
func WriteCSV(w io.Writer, rows []benchmark.AnalysisRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.IterativeTimeNs, 10),
			strconv.FormatInt(r.RecursiveTimeNs, 10),
			strconv.Itoa(r.IterativeComparisons),
			strconv.Itoa(r.RecursiveComparisons),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile replaces path with the CSV export of rows.
func WriteCSVFile(path string, rows []benchmark.AnalysisRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
