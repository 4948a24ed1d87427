package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/benchlab/sightline/bench"
	"github.com/benchlab/sightline/internal/workload"
)

// Request describes one measured execution of a workload.
type Request struct {
	// Workload names a registered workload.
	Workload string

	// Param overrides the workload's default parameter when non-nil.
	Param *int32

	// Iterations is the number of times the body runs. Zero means 1.
	Iterations int

	// Verify enforces the registered checksum on every iteration. It only
	// applies when the workload declares a checksum and the request runs at
	// the default parameter; otherwise verification is skipped with a debug
	// log.
	Verify bool
}

// Result holds everything one run produced.
type Result struct {
	// ID is the run identifier (UUIDv7 in production).
	ID string

	// Workload and Param echo the resolved request.
	Workload string
	Param    int32

	// Iterations is the number of completed body executions.
	Iterations int

	// Checksum is the value the workload returned (identical across
	// iterations for a deterministic body).
	Checksum int32

	// StartedAt is the wall-clock time the first iteration began.
	StartedAt time.Time

	// Samples are per-iteration region durations, as observed through the
	// recording hooks. One sample per start/end pair the workload emitted.
	Samples []time.Duration
}

// Total returns the sum of all samples.
func (r *Result) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Samples {
		total += s
	}
	return total
}

// Min returns the smallest sample, or 0 when there are none.
func (r *Result) Min() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	min := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Max returns the largest sample, or 0 when there are none.
func (r *Result) Max() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	max := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s > max {
			max = s
		}
	}
	return max
}

// Mean returns the average sample, or 0 when there are none.
func (r *Result) Mean() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	return r.Total() / time.Duration(len(r.Samples))
}

// Runner executes workloads with recording hooks installed.
//
// Not safe for concurrent use: the bench hook cell is process-wide.
type Runner struct {
	clock  Clock
	ids    IDGenerator
	logger *slog.Logger
}

// Options configures a Runner. Zero values select production defaults.
type Options struct {
	Clock  Clock        // nil: SystemClock
	IDs    IDGenerator  // nil: UUIDv7Generator
	Logger *slog.Logger // nil: slog.Default()
}

// New creates a Runner.
func New(opts Options) *Runner {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = UUIDv7Generator{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{clock: opts.Clock, ids: opts.IDs, logger: opts.Logger}
}

// Run executes one request to completion.
//
// Cancellation is checked between iterations; a workload body itself is
// never interrupted mid-flight.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	spec, ok := workload.Lookup(req.Workload)
	if !ok {
		return nil, &UnknownWorkloadError{Name: req.Workload}
	}

	param := spec.DefaultParam
	if req.Param != nil {
		param = *req.Param
	}
	iterations := req.Iterations
	if iterations <= 0 {
		iterations = 1
	}

	verify := req.Verify
	if verify && (!spec.HasChecksum || param != spec.DefaultParam) {
		r.logger.Debug("checksum verification skipped",
			"workload", spec.Name, "param", param, "declared", spec.HasChecksum)
		verify = false
	}

	hooks := newTimingHooks(r.clock)
	prev := bench.SetHooks(hooks)
	defer bench.SetHooks(prev)

	result := &Result{
		ID:        r.ids.Generate(),
		Workload:  spec.Name,
		Param:     param,
		StartedAt: r.clock.Now(),
	}

	r.logger.Debug("run starting",
		"run_id", result.ID, "workload", spec.Name, "param", param, "iterations", iterations)

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %s canceled after %d iterations: %w", result.ID, i, err)
		}

		got := spec.Fn(param)
		if verify && got != spec.Checksum {
			return nil, &VerifyError{
				Workload:  spec.Name,
				Param:     param,
				Iteration: i,
				Got:       got,
				Want:      spec.Checksum,
			}
		}
		result.Checksum = got
		result.Iterations = i + 1
	}

	result.Samples = hooks.take()

	r.logger.Debug("run finished",
		"run_id", result.ID, "samples", len(result.Samples), "total_ns", result.Total().Nanoseconds())

	return result, nil
}
