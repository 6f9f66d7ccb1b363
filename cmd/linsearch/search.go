package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"linsearch/internal/benchmark"
	"linsearch/internal/search"
)

var (
	searchSize      int
	searchAlgorithm string
	batchSizes      []int
	batchAlgorithm  string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one linear search benchmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		size := cfg.Limits.SearchDefault
		if cmd.Flags().Changed("size") {
			size = searchSize
		}

		runner := benchmark.NewLinearRunner(cfg.Limits)
		return printJSON(cmd.OutOrStdout(), runner.RunSingle(size, search.ParseAlgorithm(searchAlgorithm)))
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run linear search benchmarks for several sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sizes := cfg.Limits.BatchDefaultSizes
		if cmd.Flags().Changed("sizes") {
			sizes = batchSizes
		}

		runner := benchmark.NewLinearRunner(cfg.Limits)
		return printJSON(cmd.OutOrStdout(), runner.RunBatch(sizes, search.ParseAlgorithm(batchAlgorithm)))
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchSize, "size", "s", 1000, "Dataset size (clamped to the configured limits)")
	searchCmd.Flags().StringVarP(&searchAlgorithm, "algorithm", "a", string(search.Iterative), "iterative or recursive")

	batchCmd.Flags().IntSliceVar(&batchSizes, "sizes", nil, "Comma-separated dataset sizes (default 10,100,500,1000,5000)")
	batchCmd.Flags().StringVarP(&batchAlgorithm, "algorithm", "a", string(search.Iterative), "iterative or recursive")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(batchCmd)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
