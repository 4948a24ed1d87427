package suite

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Suite is a named set of workload executions.
type Suite struct {
	// Name is the field label in the CUE file.
	Name string

	// Description explains what the suite covers. Optional.
	Description string

	// Entries are executed in declaration order.
	Entries []Entry
}

// Entry is one workload execution inside a suite.
type Entry struct {
	// Workload names a registered workload.
	Workload string

	// Param is the workload parameter. Zero means the registered default.
	Param int32

	// Iterations is the execution count. Zero means 1.
	Iterations int

	// Verify enforces the registered checksum during the run.
	Verify bool
}

// Error code constants - unified across loading and validation.
const (
	ErrCodeGeneric     = "S001" // Generic/unknown error
	ErrCodeNotFound    = "S002" // Path not found
	ErrCodeNoFiles     = "S003" // No CUE files found
	ErrCodeLoadFailed  = "S004" // CUE load failed
	ErrCodeBuildFailed = "S005" // CUE build failed
	ErrCodeBadField    = "S006" // Field missing or wrong type

	ErrCodeUnknownWorkload = "S101" // Workload not registered
	ErrCodeBadParam        = "S102" // Parameter out of range
	ErrCodeBadIterations   = "S103" // Iteration count out of range
	ErrCodeEmptySuite      = "S104" // Suite declares no entries
)

// Error represents a suite loading or validation error.
type Error struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
