package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"linsearch/internal/benchmark"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	improveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// Status labels used by PrintComparison.
const (
	StatusPass    = "PASS"
	StatusFail    = "FAIL"
	StatusImprove = "IMPR"
)

// PrintSummary renders a performance analysis as a table.
func PrintSummary(w io.Writer, run benchmark.Run) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Performance analysis for %d different sizes", len(run.Rows))))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tITERATIVE NS\tRECURSIVE NS\tITER COMPS\tREC COMPS")
	for _, r := range run.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n",
			r.Size, r.IterativeTimeNs, r.RecursiveTimeNs, r.IterativeComparisons, r.RecursiveComparisons)
	}
	tw.Flush()
}

// Classify maps a percentage time change onto a status label.
func Classify(diff, threshold float64) string {
	switch {
	case diff > threshold:
		return StatusFail
	case diff < -threshold:
		return StatusImprove
	default:
		return StatusPass
	}
}

// PrintComparison renders comps against threshold and returns how many sizes
// regressed in either variant.
func PrintComparison(w io.Writer, comps []benchmark.Comparison, threshold float64) int {
	if len(comps) == 0 {
		fmt.Fprintln(w, "No sizes in common with the previous run.")
		return 0
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Comparison with previous run (threshold %.1f%%)", threshold)))

	regressions := 0
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tITERATIVE DIFF %\tRECURSIVE DIFF %\tSTATUS")
	for _, c := range comps {
		status := Classify(c.IterativeTimeDiff, threshold)
		if rec := Classify(c.RecursiveTimeDiff, threshold); rec == StatusFail || status == StatusPass {
			status = rec
		}
		if status == StatusFail {
			regressions++
		}

		label := status
		switch status {
		case StatusFail:
			label = failStyle.Render(status)
		case StatusImprove:
			label = improveStyle.Render(status)
		}
		if c.ComparisonsChanged {
			label += " (comparisons changed)"
		}
		fmt.Fprintf(tw, "%d\t%+.2f%%\t%+.2f%%\t%s\n", c.Size, c.IterativeTimeDiff, c.RecursiveTimeDiff, label)
	}
	tw.Flush()
	return regressions
}
