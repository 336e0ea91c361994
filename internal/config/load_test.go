package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"mdbench/internal/benchmark"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load("")
	cfg := FromViper()

	assert.Equal(t, []benchmark.SizeSpec{
		{Label: "small", Repetitions: 2},
		{Label: "medium", Repetitions: 20},
		{Label: "large", Repetitions: 120},
	}, cfg.Sizes)
	assert.Equal(t, 20, cfg.Iterations)
	assert.Equal(t, 3, cfg.Warmup)
	assert.Equal(t, "data/benchmark_results.csv", cfg.ResultsCSV)
	assert.Equal(t, "charts/throughput.png", cfg.ThroughputChart)
	assert.Equal(t, "charts/mean_time.png", cfg.MeanTimeChart)
	assert.Equal(t, ".mdbench/history.db", cfg.HistoryDB)
}

func TestEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("MDBENCH_ITERATIONS", "5")
	t.Setenv("MDBENCH_SIZES_SMALL", "1")

	Load("")
	cfg := FromViper()

	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, 1, cfg.Sizes[0].Repetitions)
}

func TestSizeOrderIsStable(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load("")
	for i := 0; i < 10; i++ {
		cfg := FromViper()
		assert.Equal(t, "small", cfg.Sizes[0].Label)
		assert.Equal(t, "medium", cfg.Sizes[1].Label)
		assert.Equal(t, "large", cfg.Sizes[2].Label)
	}
}
