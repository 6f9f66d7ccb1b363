package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"linsearch/internal/benchmark"
)

// SQLiteStore keeps analysis history in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
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
	queries := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at INTEGER NOT NULL,
			label TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS analysis_rows (
			run_id INTEGER NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			size INTEGER NOT NULL,
			iterative_time_ns INTEGER NOT NULL,
			recursive_time_ns INTEGER NOT NULL,
			iterative_comparisons INTEGER NOT NULL,
			recursive_comparisons INTEGER NOT NULL,
			PRIMARY KEY (run_id, position)
		);`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores run and its rows in one transaction.
func (s *SQLiteStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO analysis_runs (created_at, label) VALUES (?, ?)`, run.Timestamp.UnixNano(), run.Label)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, r := range run.Rows {
		_, err := tx.Exec(`INSERT INTO analysis_rows
			(run_id, position, size, iterative_time_ns, recursive_time_ns, iterative_comparisons, recursive_comparisons)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, r.Size, r.IterativeTimeNs, r.RecursiveTimeNs, r.IterativeComparisons, r.RecursiveComparisons)
		if err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns every stored run, oldest first.
func (s *SQLiteStore) LoadAll() ([]benchmark.Run, error) {
	return loadRuns(s.db, selectRuns, selectRows)
}

// LoadLatest returns the most recent run, or nil when none is stored.
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	return loadLatest(s.db)
}
