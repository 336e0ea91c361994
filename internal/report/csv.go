// Package report writes benchmark results out as CSV tables and grouped
// bar charts.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mdbench/internal/benchmark"
)

var csvHeader = []string{
	"library", "size_label", "size_bytes", "iterations", "mean_ms", "p95_ms", "throughput_mb_s",
}

// WriteCSV writes results to path in input order, creating parent
// directories as needed and overwriting any existing file. Floating-point
// columns are formatted to exactly 4 decimal places. An empty result set
// still produces the header row.
func WriteCSV(results []benchmark.Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Library,
			r.SizeLabel,
			strconv.Itoa(r.SizeBytes),
			strconv.Itoa(r.Iterations),
			fmt.Sprintf("%.4f", r.MeanMs),
			fmt.Sprintf("%.4f", r.P95Ms),
			fmt.Sprintf("%.4f", r.ThroughputMBs),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
