package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"linsearch/internal/benchmark"
)

// PostgresStore keeps analysis history in PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id BIGSERIAL PRIMARY KEY,
			created_at BIGINT NOT NULL,
			label TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS analysis_rows (
			run_id BIGINT NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			size INTEGER NOT NULL,
			iterative_time_ns BIGINT NOT NULL,
			recursive_time_ns BIGINT NOT NULL,
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Save stores run and its rows in one transaction.
func (s *PostgresStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`INSERT INTO analysis_runs (created_at, label) VALUES ($1, $2) RETURNING id`,
		run.Timestamp.UnixNano(), run.Label).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, r := range run.Rows {
		_, err := tx.Exec(`INSERT INTO analysis_rows
			(run_id, position, size, iterative_time_ns, recursive_time_ns, iterative_comparisons, recursive_comparisons)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, i, r.Size, r.IterativeTimeNs, r.RecursiveTimeNs, r.IterativeComparisons, r.RecursiveComparisons)
		if err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns every stored run, oldest first.
func (s *PostgresStore) LoadAll() ([]benchmark.Run, error) {
	return loadRuns(s.db, selectRuns, selectRows)
}

// LoadLatest returns the most recent run, or nil when none is stored.
func (s *PostgresStore) LoadLatest() (*benchmark.Run, error) {
	return loadLatest(s.db)
}
