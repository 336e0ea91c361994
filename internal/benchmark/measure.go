package benchmark

import "time"

// Measure times repeated render calls over a single document.
//
// It performs warmup calls whose outputs and timings are discarded, then
// iterations timed calls, recording per-call wall-clock elapsed time in
// milliseconds via the monotonic clock. It returns the reduced statistics
// only, never the raw samples. A zero iteration count returns (0, 0).
// A render error aborts immediately and is returned unmodified.
func Measure(render RenderFunc, doc string, iterations, warmup int) (meanMs, p95Ms float64, err error) {
	for i := 0; i < warmup; i++ {
		if _, err := render(doc); err != nil {
			return 0, 0, err
		}
	}

	if iterations == 0 {
		return 0, 0, nil
	}

	timings := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		_, err := render(doc)
		elapsed := time.Since(start)
		if err != nil {
			return 0, 0, err
		}
		timings = append(timings, float64(elapsed.Nanoseconds())/1e6)
	}

	return Mean(timings), Percentile(timings, 0.95), nil
}
