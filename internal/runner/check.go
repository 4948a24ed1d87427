package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/benchlab/sightline/bench"
)

// BarrierCheck reports the outcome of the escape-barrier self-check.
type BarrierCheck struct {
	// Small and Large are the best-of-N timings for the two work sizes.
	Small time.Duration `json:"small_ns"`
	Large time.Duration `json:"large_ns"`

	// Ratio is Large divided by Small.
	Ratio float64 `json:"ratio"`

	// OK is true when the escaped computation's cost scaled with the work,
	// i.e. the optimizer did not delete it.
	OK bool `json:"ok"`
}

// ElisionError reports that the escape barrier failed the self-check: the
// cost of an escaped computation did not scale with its size, meaning the
// toolchain that produced this binary optimized the work away.
type ElisionError struct {
	Check BarrierCheck
}

// Error implements the error interface.
func (e *ElisionError) Error() string {
	return fmt.Sprintf("escape barrier ineffective: %dx work cost only %.2fx time (small=%v large=%v)",
		checkScale, e.Check.Ratio, e.Check.Small, e.Check.Large)
}

const (
	checkSmall  = 1 << 16
	checkScale  = 64
	checkRounds = 5

	// minRatio is deliberately far below checkScale: the check detects
	// elision (ratio near 1), not scheduler jitter.
	minRatio = 4.0
)

// checkSpin burns CPU proportional to n and escapes the accumulator.
func checkSpin(n int) {
	acc := uint64(1)
	for i := 0; i < n; i++ {
		acc = acc*6364136223846793005 + 1442695040888963407
	}
	bench.Sink(&acc)
}

// CheckBarrier performs differential-timing detection of barrier elision.
//
// If the compiler treated the escape as removable, the loop in checkSpin
// is dead code and timing stops scaling with n. The check runs two work
// sizes 64x apart and requires only a 4x cost difference, keeping it
// robust on noisy hosts. Cancellation is honored between rounds.
func CheckBarrier(ctx context.Context) (*BarrierCheck, error) {
	// Warm-up round so neither measurement pays for faults or frequency
	// scaling alone.
	checkSpin(checkSmall)

	small, err := bestOf(ctx, checkSmall)
	if err != nil {
		return nil, err
	}
	large, err := bestOf(ctx, checkSmall*checkScale)
	if err != nil {
		return nil, err
	}

	check := newBarrierCheck(small, large)
	if !check.OK {
		return check, &ElisionError{Check: *check}
	}
	return check, nil
}

func newBarrierCheck(small, large time.Duration) *BarrierCheck {
	// A coarse clock can report 0 for the small size; clamp so the ratio
	// stays finite.
	if small <= 0 {
		small = time.Nanosecond
	}
	check := &BarrierCheck{
		Small: small,
		Large: large,
		Ratio: float64(large) / float64(small),
	}
	check.OK = check.Ratio >= minRatio
	return check
}

func bestOf(ctx context.Context, n int) (time.Duration, error) {
	best := time.Duration(1<<63 - 1)
	for r := 0; r < checkRounds; r++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("barrier check canceled: %w", err)
		}
		start := time.Now()
		checkSpin(n)
		if d := time.Since(start); d < best {
			best = d
		}
	}
	return best, nil
}
