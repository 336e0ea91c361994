package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mdbench/internal/config"
	"mdbench/internal/history"
)

var compareThreshold float64

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the two most recent runs for regressions",
	Long: `Loads the two most recent saved runs and reports the mean render
time change per (library, size) pair. Pairs slower than the threshold
percentage are flagged as regressions.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "Percentage threshold for regression warning")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	store, err := newStoreFunc(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadRuns(2)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), "Need at least two saved runs to compare.")
		return nil
	}

	// runs are newest first
	comps := history.Compare(runs[1].Results, runs[0].Results)
	if len(comps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The two runs share no (library, size) pairs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "LIBRARY\tSIZE\tPREV MS\tCURR MS\tDIFF %\tSTATUS")
	for _, c := range comps {
		status := "PASS"
		if c.MeanDiff > compareThreshold {
			status = "FAIL"
		} else if c.MeanDiff < -compareThreshold {
			status = "IMPR"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%+.2f%%\t%s\n",
			c.Library, c.SizeLabel, c.Prev.MeanMs, c.Curr.MeanMs, c.MeanDiff, status)
	}
	return w.Flush()
}
