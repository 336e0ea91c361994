package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mdbench/internal/benchmark"
)

// sizeOrder fixes the iteration order of the size labels. Sizes live in
// viper as individual keys, and viper maps are unordered.
var sizeOrder = []string{"small", "medium", "large"}

// Config carries every knob of a benchmark run. The defaults reproduce
// the canonical pipeline; nothing here is required to be set externally.
type Config struct {
	Sizes           []benchmark.SizeSpec
	Iterations      int
	Warmup          int
	ResultsCSV      string
	ThroughputChart string
	MeanTimeChart   string
	HistoryDB       string
}

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MDBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("sizes.small", 2)
	viper.SetDefault("sizes.medium", 20)
	viper.SetDefault("sizes.large", 120)
	viper.SetDefault("iterations", 20)
	viper.SetDefault("warmup", 3)
	viper.SetDefault("output.results_csv", "data/benchmark_results.csv")
	viper.SetDefault("output.throughput_chart", "charts/throughput.png")
	viper.SetDefault("output.mean_time_chart", "charts/mean_time.png")
	viper.SetDefault("history.db", ".mdbench/history.db")

	// If a config file is found, read it in. Absence is not an error.
	_ = viper.ReadInConfig()
}

// FromViper materializes the Config from the current viper state.
func FromViper() Config {
	sizes := make([]benchmark.SizeSpec, 0, len(sizeOrder))
	for _, label := range sizeOrder {
		sizes = append(sizes, benchmark.SizeSpec{
			Label:       label,
			Repetitions: viper.GetInt("sizes." + label),
		})
	}

	return Config{
		Sizes:           sizes,
		Iterations:      viper.GetInt("iterations"),
		Warmup:          viper.GetInt("warmup"),
		ResultsCSV:      viper.GetString("output.results_csv"),
		ThroughputChart: viper.GetString("output.throughput_chart"),
		MeanTimeChart:   viper.GetString("output.mean_time_chart"),
		HistoryDB:       viper.GetString("history.db"),
	}
}
