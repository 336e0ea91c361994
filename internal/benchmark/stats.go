package benchmark

import (
	"math"
	"slices"
)

// Mean returns the arithmetic mean of values.
// Callers must not pass an empty slice; Measure guarantees this by
// special-casing a zero iteration count before reducing.
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Percentile returns the nearest-rank percentile of values for a fraction
// in [0, 1]: the element at index round((n-1)*percent) of the ascending
// sort, rounding halves up (math.Round). An empty slice returns 0.0 rather
// than an error; downstream consumers rely on that value.
func Percentile(values []float64, percent float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	index := int(math.Round(float64(len(sorted)-1) * percent))
	return sorted[index]
}
