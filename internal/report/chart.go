package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"mdbench/internal/benchmark"
)

// Metric selects which Result field a chart plots.
type Metric string

const (
	MetricMean       Metric = "mean_ms"
	MetricP95        Metric = "p95_ms"
	MetricThroughput Metric = "throughput_mb_s"
)

func (m Metric) value(r benchmark.Result) float64 {
	switch m {
	case MetricP95:
		return r.P95Ms
	case MetricThroughput:
		return r.ThroughputMBs
	default:
		return r.MeanMs
	}
}

// bar is one drawable bar: a library's metric value within a size-label
// category.
type bar struct {
	library  string
	labelIdx int
	value    float64
}

// groupBars arranges results into grouped-bar form: lexicographically
// sorted size labels (x categories) and libraries (bar series), plus one
// bar per result. Combinations absent from results produce no bar; there
// is no zero-fill.
func groupBars(results []benchmark.Result, metric Metric) (labels, libraries []string, bars []bar) {
	labelSet := make(map[string]bool)
	librarySet := make(map[string]bool)
	for _, r := range results {
		labelSet[r.SizeLabel] = true
		librarySet[r.Library] = true
	}
	for l := range labelSet {
		labels = append(labels, l)
	}
	for l := range librarySet {
		libraries = append(libraries, l)
	}
	sort.Strings(labels)
	sort.Strings(libraries)

	labelIdx := make(map[string]int, len(labels))
	for i, l := range labels {
		labelIdx[l] = i
	}

	for _, r := range results {
		bars = append(bars, bar{
			library:  r.Library,
			labelIdx: labelIdx[r.SizeLabel],
			value:    metric.value(r),
		})
	}
	return labels, libraries, bars
}

// PlotMetric draws a grouped bar chart of the chosen metric, one category
// per size label and one bar per library, and saves it as a PNG at a fixed
// size. Parent directories are created as needed.
func PlotMetric(results []benchmark.Result, metric Metric, ylabel, path string) error {
	labels, libraries, bars := groupBars(results, metric)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Markdown benchmark: %s by size", ylabel)
	p.Y.Label.Text = ylabel

	barWidth := vg.Points(16)

	libIdx := make(map[string]int, len(libraries))
	for i, lib := range libraries {
		libIdx[lib] = i
	}

	inLegend := make(map[string]bool, len(libraries))
	for _, b := range bars {
		bc, err := plotter.NewBarChart(plotter.Values{b.value}, barWidth)
		if err != nil {
			return err
		}
		i := libIdx[b.library]
		// single-value charts draw at x = XMin; the offset spreads a
		// category's bars symmetrically around its center
		bc.XMin = float64(b.labelIdx)
		bc.Offset = vg.Length(float64(i)-float64(len(libraries))/2) * barWidth
		bc.Color = plotutil.Color(i)
		bc.LineStyle.Width = 0
		p.Add(bc)

		if !inLegend[b.library] {
			p.Legend.Add(b.library, bc)
			inLegend[b.library] = true
		}
	}

	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	// fix the x range so lone categories are not stretched edge to edge
	p.X.Min = -0.5
	p.X.Max = float64(len(labels)) - 0.5
	p.Legend.Top = true

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
