package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdbench/internal/benchmark"
	"mdbench/internal/history"
)

func TestCompareCmdNeedsTwoRuns(t *testing.T) {
	defer func() {
		newStoreFunc = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
	}()
	newStoreFunc = func(path string) (history.Store, error) {
		return &mockStore{runs: []history.Run{{ID: 1}}}, nil
	}

	cmd, out, _ := newTestCommand()
	require.NoError(t, runCompare(cmd, nil))
	assert.Contains(t, out.String(), "Need at least two saved runs")
}

func TestCompareCmdStatuses(t *testing.T) {
	store := &mockStore{
		runs: []history.Run{
			{ // newest
				ID: 2,
				Results: []benchmark.Result{
					{Library: "goldmark", SizeLabel: "small", MeanMs: 150},   // 50% slower -> FAIL
					{Library: "blackfriday", SizeLabel: "small", MeanMs: 50}, // 50% faster -> IMPR
					{Library: "commonmark", SizeLabel: "small", MeanMs: 102}, // 2% slower -> PASS
				},
			},
			{
				ID: 1,
				Results: []benchmark.Result{
					{Library: "goldmark", SizeLabel: "small", MeanMs: 100},
					{Library: "blackfriday", SizeLabel: "small", MeanMs: 100},
					{Library: "commonmark", SizeLabel: "small", MeanMs: 100},
				},
			},
		},
	}
	defer func() {
		newStoreFunc = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
	}()
	newStoreFunc = func(path string) (history.Store, error) { return store, nil }

	oldThreshold := compareThreshold
	compareThreshold = 10.0
	defer func() { compareThreshold = oldThreshold }()

	cmd, out, _ := newTestCommand()
	require.NoError(t, runCompare(cmd, nil))

	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "IMPR")
	assert.Contains(t, out.String(), "PASS")
	assert.Contains(t, out.String(), "+50.00%")
	assert.Contains(t, out.String(), "-50.00%")
}
