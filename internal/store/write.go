package store

import (
	"context"
	"fmt"
	"time"

	"github.com/benchlab/sightline/internal/runner"
)

// WriteRun inserts a run record and its samples in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - recording the same
// run twice is silently ignored. Other constraint violations still return
// errors.
func (s *Store) WriteRun(ctx context.Context, res *runner.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	out, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, workload, param, iterations, checksum, total_ns, min_ns, max_ns, mean_ns, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		res.ID,
		res.Workload,
		res.Param,
		res.Iterations,
		res.Checksum,
		res.Total().Nanoseconds(),
		res.Min().Nanoseconds(),
		res.Max().Nanoseconds(),
		res.Mean().Nanoseconds(),
		res.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	// Duplicate id: the run (and its samples) are already recorded.
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		return nil
	}

	for i, d := range res.Samples {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO samples (run_id, iter, duration_ns)
			VALUES (?, ?, ?)
		`, res.ID, i, d.Nanoseconds())
		if err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}
