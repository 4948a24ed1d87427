package runner

import (
	"errors"
	"fmt"
)

// UnknownWorkloadError reports a request naming no registered workload.
type UnknownWorkloadError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownWorkloadError) Error() string {
	return fmt.Sprintf("unknown workload %q", e.Name)
}

// VerifyError reports a checksum mismatch: the workload computed a result
// different from the value its registration promises.
type VerifyError struct {
	Workload  string
	Param     int32
	Iteration int
	Got       int32
	Want      int32
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s(param=%d) at iteration %d: got %d, want %d",
		e.Workload, e.Param, e.Iteration, e.Got, e.Want)
}

// IsVerifyError returns true if the error is a checksum mismatch.
// Uses errors.As to handle wrapped errors.
func IsVerifyError(err error) bool {
	var ve *VerifyError
	return errors.As(err, &ve)
}
