package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdbench/internal/benchmark"
	"mdbench/internal/config"
	"mdbench/internal/history"
)

type mockStore struct {
	runs    []history.Run
	saved   [][]benchmark.Result
	saveErr error
	loadErr error
}

func (m *mockStore) Close() error { return nil }

func (m *mockStore) SaveRun(results []benchmark.Result) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, results)
	return nil
}

func (m *mockStore) LoadRuns(limit int) ([]history.Run, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if limit > 0 && limit < len(m.runs) {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

func tinyConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		Sizes:           []benchmark.SizeSpec{{Label: "small", Repetitions: 1}},
		Iterations:      1,
		Warmup:          0,
		ResultsCSV:      filepath.Join(dir, "data", "benchmark_results.csv"),
		ThroughputChart: filepath.Join(dir, "charts", "throughput.png"),
		MeanTimeChart:   filepath.Join(dir, "charts", "mean_time.png"),
		HistoryDB:       filepath.Join(dir, ".mdbench", "history.db"),
	}
}

func TestRunBenchmarksPipeline(t *testing.T) {
	store := &mockStore{}
	defer func() {
		newStoreFunc = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
	}()
	newStoreFunc = func(path string) (history.Store, error) { return store, nil }

	cfg := tinyConfig(t)
	cmd, out, errOut := newTestCommand()

	require.NoError(t, runBenchmarks(cmd, cfg))

	// one console line per (size, renderer) pair
	var pairLines int
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "ms mean,") {
			pairLines++
		}
	}
	assert.Equal(t, 5, pairLines, "expected one line per registry entry")

	for _, path := range []string{cfg.ResultsCSV, cfg.ThroughputChart, cfg.MeanTimeChart} {
		info, err := os.Stat(path)
		require.NoError(t, err, "missing artifact %s", path)
		assert.Greater(t, info.Size(), int64(0))
	}

	csv, err := os.ReadFile(cfg.ResultsCSV)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csv), "library,size_label,"))
	assert.Len(t, strings.Split(strings.TrimSpace(string(csv)), "\n"), 6) // header + 5 rows

	require.Len(t, store.saved, 1)
	assert.Len(t, store.saved[0], 5)
	assert.Empty(t, errOut.String())
}

func TestRunBenchmarksHistoryFailureIsNonFatal(t *testing.T) {
	store := &mockStore{saveErr: os.ErrPermission}
	defer func() {
		newStoreFunc = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
	}()
	newStoreFunc = func(path string) (history.Store, error) { return store, nil }

	cfg := tinyConfig(t)
	cmd, _, errOut := newTestCommand()

	require.NoError(t, runBenchmarks(cmd, cfg))
	assert.Contains(t, errOut.String(), "Warning: failed to save run history")

	// artifacts are still produced
	_, err := os.Stat(cfg.ResultsCSV)
	assert.NoError(t, err)
}

func TestRunBenchmarksSummary(t *testing.T) {
	defer func() {
		newStoreFunc = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
	}()
	newStoreFunc = func(path string) (history.Store, error) { return &mockStore{}, nil }

	cfg := tinyConfig(t)
	cmd, out, _ := newTestCommand()

	require.NoError(t, runBenchmarks(cmd, cfg))
	assert.Contains(t, out.String(), "Benchmark Summary")
	assert.Contains(t, out.String(), "Benchmark complete: 5 results")
}
