package benchmark

import (
	"fmt"
	"io"
	"log/slog"

	"mdbench/internal/document"
)

// Run benchmarks every renderer against every document size and returns one
// Result per (size, renderer) pair, in size-major declaration order.
//
// The document for a size label is built once and reused across renderers.
// A render failure aborts the whole run; there is no skip-and-continue. One
// progress line per pair is written to out.
func Run(sizes []SizeSpec, renderers []Renderer, iterations, warmup int, out io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(sizes)*len(renderers))

	for _, size := range sizes {
		doc := document.Build(size.Repetitions)
		sizeBytes := len(doc)
		slog.Debug("document built", "size_label", size.Label, "bytes", sizeBytes)

		for _, r := range renderers {
			meanMs, p95Ms, err := Measure(r.Render, doc, iterations, warmup)
			if err != nil {
				return nil, fmt.Errorf("rendering %q document with %s: %w", size.Label, r.Name, err)
			}

			res := Result{
				Library:       r.Name,
				SizeLabel:     size.Label,
				SizeBytes:     sizeBytes,
				Iterations:    iterations,
				MeanMs:        meanMs,
				P95Ms:         p95Ms,
				ThroughputMBs: throughput(sizeBytes, meanMs),
			}
			results = append(results, res)

			fmt.Fprintf(out, "%s | %s: %.2f ms mean, %.2f ms p95, %.2f MB/s\n",
				res.Library, res.SizeLabel, res.MeanMs, res.P95Ms, res.ThroughputMBs)
		}
	}

	return results, nil
}

// throughput derives megabytes per second from the document size and the
// mean render duration. The division is deliberately unguarded: a zero mean
// on a degenerate clock yields +Inf rather than an error.
func throughput(sizeBytes int, meanMs float64) float64 {
	return (float64(sizeBytes) / 1e6) / (meanMs / 1000)
}
