package db

import (
	"database/sql"
	"fmt"
	"time"

	"linsearch/internal/benchmark"
)

// Both dialects share these read queries; neither takes arguments.
const (
	selectRuns = `SELECT id, created_at, label FROM analysis_runs ORDER BY created_at, id`
	selectRows = `SELECT run_id, size, iterative_time_ns, recursive_time_ns, iterative_comparisons, recursive_comparisons
		FROM analysis_rows ORDER BY run_id, position`

	selectLatestRun = `SELECT id, created_at, label FROM analysis_runs ORDER BY created_at DESC, id DESC LIMIT 1`
	selectLatestRow = `SELECT run_id, size, iterative_time_ns, recursive_time_ns, iterative_comparisons, recursive_comparisons
		FROM analysis_rows
		WHERE run_id = (SELECT id FROM analysis_runs ORDER BY created_at DESC, id DESC LIMIT 1)
		ORDER BY position`
)

// loadRuns reads run headers, then attaches their rows in position order.
func loadRuns(db *sql.DB, runsQuery, rowsQuery string) ([]benchmark.Run, error) {
	rows, err := db.Query(runsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []benchmark.Run{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			run     benchmark.Run
			created int64
		)
		if err := rows.Scan(&run.ID, &created, &run.Label); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Timestamp = time.Unix(0, created).UTC()
		run.Rows = []benchmark.AnalysisRow{}
		index[run.ID] = len(runs)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return runs, nil
	}

	detail, err := db.Query(rowsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer detail.Close()

	for detail.Next() {
		var (
			runID int64
			r     benchmark.AnalysisRow
		)
		if err := detail.Scan(&runID, &r.Size, &r.IterativeTimeNs, &r.RecursiveTimeNs, &r.IterativeComparisons, &r.RecursiveComparisons); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if i, ok := index[runID]; ok {
			runs[i].Rows = append(runs[i].Rows, r)
		}
	}
	return runs, detail.Err()
}

func loadLatest(db *sql.DB) (*benchmark.Run, error) {
	runs, err := loadRuns(db, selectLatestRun, selectLatestRow)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
