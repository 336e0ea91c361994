package history

import (
	"fmt"

	"mdbench/internal/benchmark"
)

// Comparison holds the change between two measurements of the same
// (library, size label) pair.
type Comparison struct {
	Library        string
	SizeLabel      string
	MeanDiff       float64 // Percentage change, positive = slower
	ThroughputDiff float64 // Percentage change, positive = faster
	Prev           benchmark.Result
	Curr           benchmark.Result
}

// Compare matches results between two runs by (library, size label) and
// returns percentage changes for pairs present in both. Pairs present in
// only one run are skipped.
func Compare(prev, curr []benchmark.Result) []Comparison {
	prevMap := make(map[string]benchmark.Result, len(prev))
	for _, r := range prev {
		prevMap[pairKey(r)] = r
	}

	var comparisons []Comparison
	for _, c := range curr {
		p, ok := prevMap[pairKey(c)]
		if !ok {
			continue
		}

		comp := Comparison{
			Library:   c.Library,
			SizeLabel: c.SizeLabel,
			Prev:      p,
			Curr:      c,
		}
		if p.MeanMs > 0 {
			comp.MeanDiff = ((c.MeanMs - p.MeanMs) / p.MeanMs) * 100
		}
		if p.ThroughputMBs > 0 {
			comp.ThroughputDiff = ((c.ThroughputMBs - p.ThroughputMBs) / p.ThroughputMBs) * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func pairKey(r benchmark.Result) string {
	return r.Library + "|" + r.SizeLabel
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%s: %+.2f%% mean", c.Library, c.SizeLabel, c.MeanDiff)
}
