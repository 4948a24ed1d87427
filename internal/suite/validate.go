package suite

import (
	"fmt"

	"github.com/benchlab/sightline/internal/workload"
)

// maxIterations bounds suite entries; anything larger is almost certainly
// a unit mistake (iterations where a parameter was meant).
const maxIterations = 1_000_000

// ValidationError describes one semantic problem in a suite.
type ValidationError struct {
	Suite   string `json:"suite"`
	Entry   int    `json:"entry"` // index into Entries, -1 for suite-level problems
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Entry >= 0 {
		return fmt.Sprintf("suite %s entry %d: %s: %s", e.Suite, e.Entry, e.Code, e.Message)
	}
	return fmt.Sprintf("suite %s: %s: %s", e.Suite, e.Code, e.Message)
}

// Validate checks a loaded suite against the workload registry and the
// runner's limits. Returns all problems found, not just the first.
func Validate(s *Suite) []ValidationError {
	var errs []ValidationError

	if len(s.Entries) == 0 {
		errs = append(errs, ValidationError{
			Suite:   s.Name,
			Entry:   -1,
			Code:    ErrCodeEmptySuite,
			Message: "suite declares no entries",
		})
		return errs
	}

	for i, entry := range s.Entries {
		if _, ok := workload.Lookup(entry.Workload); !ok {
			errs = append(errs, ValidationError{
				Suite:   s.Name,
				Entry:   i,
				Code:    ErrCodeUnknownWorkload,
				Message: fmt.Sprintf("unknown workload %q", entry.Workload),
			})
		}
		if entry.Param < 0 {
			errs = append(errs, ValidationError{
				Suite:   s.Name,
				Entry:   i,
				Code:    ErrCodeBadParam,
				Message: fmt.Sprintf("param must be >= 0, got %d", entry.Param),
			})
		}
		if entry.Iterations < 0 || entry.Iterations > maxIterations {
			errs = append(errs, ValidationError{
				Suite:   s.Name,
				Entry:   i,
				Code:    ErrCodeBadIterations,
				Message: fmt.Sprintf("iterations must be in [0, %d], got %d", maxIterations, entry.Iterations),
			})
		}
	}

	return errs
}
