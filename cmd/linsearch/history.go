package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"linsearch/internal/report"
)

var historyLatest bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved performance analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if historyLatest {
			run, err := store.LoadLatest()
			if err != nil {
				return err
			}
			if run == nil {
				fmt.Fprintln(out, "No saved runs.")
				return nil
			}
			report.PrintSummary(out, *run)
			return nil
		}

		runs, err := store.LoadAll()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, "No saved runs.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTIMESTAMP\tLABEL\tSIZES")
		for _, r := range runs {
			label := r.Label
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.ID, r.Timestamp.Format(time.RFC3339), label, len(r.Rows))
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyLatest, "latest", false, "Show the rows of the most recent run")
	rootCmd.AddCommand(historyCmd)
}
