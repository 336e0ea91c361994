package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mdbench/internal/config"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to list (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	store, err := newStoreFunc(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "RUN\tWHEN\tPAIRS\tLIBRARIES")
	for _, run := range runs {
		libraries := make(map[string]bool)
		for _, r := range run.Results {
			libraries[r.Library] = true
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n",
			run.ID, run.CreatedAt.Local().Format(time.RFC3339), len(run.Results), len(libraries))
	}
	return w.Flush()
}
