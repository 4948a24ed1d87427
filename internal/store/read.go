package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates no run exists under the requested id.
var ErrNotFound = errors.New("run not found")

// Run is a recorded run as read back from the database.
type Run struct {
	ID         string    `json:"id"`
	Workload   string    `json:"workload"`
	Param      int32     `json:"param"`
	Iterations int       `json:"iterations"`
	Checksum   int32     `json:"checksum"`
	TotalNS    int64     `json:"total_ns"`
	MinNS      int64     `json:"min_ns"`
	MaxNS      int64     `json:"max_ns"`
	MeanNS     int64     `json:"mean_ns"`
	StartedAt  time.Time `json:"started_at"`

	// SampleNS is populated by ReadRun only; ListRuns leaves it nil.
	SampleNS []int64 `json:"sample_ns,omitempty"`
}

// ListRuns returns recorded runs, newest first (UUIDv7 ids sort by
// creation time). An empty workload matches every workload. limit <= 0
// means no limit.
func (s *Store) ListRuns(ctx context.Context, workloadName string, limit int) ([]Run, error) {
	query := `
		SELECT id, workload, param, iterations, checksum, total_ns, min_ns, max_ns, mean_ns, started_at
		FROM runs
	`
	var args []any
	if workloadName != "" {
		query += " WHERE workload = ?"
		args = append(args, workloadName)
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return runs, nil
}

// ReadRun returns a single run with its samples.
// Returns ErrNotFound if no run exists under id.
func (s *Store) ReadRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, workload, param, iterations, checksum, total_ns, min_ns, max_ns, mean_ns, started_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT duration_ns FROM samples
		WHERE run_id = ?
		ORDER BY iter ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("read run %s samples: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ns int64
		if err := rows.Scan(&ns); err != nil {
			return nil, fmt.Errorf("read run %s samples: %w", id, err)
		}
		run.SampleNS = append(run.SampleNS, ns)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read run %s samples: %w", id, err)
	}

	return &run, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var startedAt string
	err := sc.Scan(
		&run.ID,
		&run.Workload,
		&run.Param,
		&run.Iterations,
		&run.Checksum,
		&run.TotalNS,
		&run.MinNS,
		&run.MaxNS,
		&run.MeanNS,
		&startedAt,
	)
	if err != nil {
		return Run{}, err
	}

	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}

	return run, nil
}
