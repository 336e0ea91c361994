// Package history persists benchmark runs so later invocations can be
// compared against earlier ones.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"mdbench/internal/benchmark"
)

// Run is one stored benchmark execution with its full result set.
type Run struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Results   []benchmark.Result `json:"results"`
}

// Store interface defines the methods for persistent run storage
type Store interface {
	Close() error
	SaveRun(results []benchmark.Result) error
	LoadRuns(limit int) ([]Run, error)
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		library TEXT NOT NULL,
		size_label TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		mean_ms REAL NOT NULL,
		p95_ms REAL NOT NULL,
		throughput_mb_s REAL NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a new run and its results in one transaction.
func (s *SQLiteStore) SaveRun(results []benchmark.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (created_at) VALUES (?)`, time.Now().UTC())
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, r := range results {
		_, err := tx.Exec(
			`INSERT INTO results (run_id, library, size_label, size_bytes, iterations, mean_ms, p95_ms, throughput_mb_s)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Library, r.SizeLabel, r.SizeBytes, r.Iterations, r.MeanMs, r.P95Ms, r.ThroughputMBs,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadRuns retrieves the most recent runs, newest first, with their
// results in insertion order. A limit <= 0 loads everything.
func (s *SQLiteStore) LoadRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(`SELECT id, created_at FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		results, err := s.loadResults(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

func (s *SQLiteStore) loadResults(runID int64) ([]benchmark.Result, error) {
	rows, err := s.db.Query(
		`SELECT library, size_label, size_bytes, iterations, mean_ms, p95_ms, throughput_mb_s
		 FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []benchmark.Result
	for rows.Next() {
		var r benchmark.Result
		if err := rows.Scan(&r.Library, &r.SizeLabel, &r.SizeBytes, &r.Iterations, &r.MeanMs, &r.P95Ms, &r.ThroughputMBs); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
