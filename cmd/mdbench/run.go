package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mdbench/internal/benchmark"
	"mdbench/internal/config"
	"mdbench/internal/history"
	"mdbench/internal/renderers"
	"mdbench/internal/report"
)

// newStoreFunc allows mocking the history store in tests.
var newStoreFunc = func(path string) (history.Store, error) {
	return history.NewSQLiteStore(path)
}

var doneStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark pipeline",
	Long: `Benchmarks every configured markdown library against every document
size, writes the results CSV, renders the throughput and mean-time charts,
and appends the run to the local history database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmarks(cmd, config.FromViper())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBenchmarks(cmd *cobra.Command, cfg config.Config) error {
	registry, err := renderers.Registry()
	if err != nil {
		return fmt.Errorf("failed to build renderer registry: %w", err)
	}

	slog.Info("starting benchmark",
		"sizes", len(cfg.Sizes),
		"renderers", len(registry),
		"iterations", cfg.Iterations,
		"warmup", cfg.Warmup)

	results, err := benchmark.Run(cfg.Sizes, registry, cfg.Iterations, cfg.Warmup, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if err := report.WriteCSV(results, cfg.ResultsCSV); err != nil {
		return fmt.Errorf("failed to write results CSV: %w", err)
	}
	if err := report.PlotMetric(results, report.MetricThroughput, "Throughput (MB/s)", cfg.ThroughputChart); err != nil {
		return fmt.Errorf("failed to render throughput chart: %w", err)
	}
	if err := report.PlotMetric(results, report.MetricMean, "Mean render time (ms)", cfg.MeanTimeChart); err != nil {
		return fmt.Errorf("failed to render mean time chart: %w", err)
	}

	// History is best-effort: a broken database must not lose the CSV and
	// charts that were already written.
	if store, err := newStoreFunc(cfg.HistoryDB); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history unavailable: %v\n", err)
	} else {
		if err := store.SaveRun(results); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save run history: %v\n", err)
		}
		store.Close()
	}

	printSummary(cmd, results)
	fmt.Fprintln(cmd.OutOrStdout(), doneStyle.Render(
		fmt.Sprintf("Benchmark complete: %d results written to %s", len(results), cfg.ResultsCSV)))
	return nil
}

// printSummary renders a markdown results table to the terminal.
func printSummary(cmd *cobra.Command, results []benchmark.Result) {
	var md strings.Builder
	md.WriteString("# Benchmark Summary\n\n")
	md.WriteString("| Library | Size | Mean (ms) | p95 (ms) | MB/s |\n")
	md.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range results {
		fmt.Fprintf(&md, "| %s | %s | %.2f | %.2f | %.2f |\n",
			r.Library, r.SizeLabel, r.MeanMs, r.P95Ms, r.ThroughputMBs)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), md.String())
		return
	}
	out, err := renderer.Render(md.String())
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), md.String())
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
}
