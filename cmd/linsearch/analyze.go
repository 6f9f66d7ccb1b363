package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linsearch/internal/benchmark"
	"linsearch/internal/report"
)

var (
	analyzeSave      bool
	analyzeCompare   bool
	analyzeThreshold float64
	analyzeLabel     string
	analyzeSizes     []int
	analyzeFail      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare iterative and recursive search across a size ladder",
	Long: `Runs both search variants for every size from 1 to 10000, prints a
summary table and writes the results as CSV. Runs can be saved to the
history and compared with the most recent saved run to spot regressions.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("csv", "performance_results.csv", "CSV output path (empty disables)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the run to history")
	analyzeCmd.Flags().BoolVar(&analyzeCompare, "compare", false, "Compare with the latest saved run")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 10.0, "Percentage threshold for regression warning")
	analyzeCmd.Flags().StringVar(&analyzeLabel, "label", "", "Label stored with the run")
	analyzeCmd.Flags().IntSliceVar(&analyzeSizes, "sizes", nil, "Override the analysed sizes")
	analyzeCmd.Flags().BoolVar(&analyzeFail, "fail-on-regression", false, "Exit non-zero when a size regressed")

	viper.BindPFlag("report.csv", analyzeCmd.Flags().Lookup("csv"))

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	sizes := benchmark.AnalysisSizes
	if cmd.Flags().Changed("sizes") {
		sizes = analyzeSizes
	}

	fmt.Fprintf(out, "Running performance analysis for %d different sizes...\n", len(sizes))
	run := benchmark.NewLinearRunner(cfg.Limits).Analyze(sizes)
	run.Label = analyzeLabel
	report.PrintSummary(out, run)

	if cfg.ReportCSV != "" {
		if err := report.WriteCSVFile(cfg.ReportCSV, run.Rows); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nResults saved to %s\n", cfg.ReportCSV)
	}

	if !analyzeCompare && !analyzeSave {
		return nil
	}

	store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	regressions := 0
	if analyzeCompare {
		prev, err := store.LoadLatest()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		fmt.Fprintln(out)
		if prev == nil {
			fmt.Fprintln(out, "No previous run to compare against.")
		} else {
			regressions = report.PrintComparison(out, benchmark.Compare(*prev, run), analyzeThreshold)
		}
	}

	if analyzeSave {
		if err := store.Save(run); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintf(out, "\nRun saved to %s history\n", cfg.HistoryType)
	}

	if analyzeFail && regressions > 0 {
		return fmt.Errorf("%d sizes regressed beyond %.1f%%", regressions, analyzeThreshold)
	}
	return nil
}
