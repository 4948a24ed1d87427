// Package suite loads benchmark suite definitions and run scenarios.
//
// Two file formats, two jobs:
//
// Suite definitions (.cue) declare named sets of workload executions.
// CUE gives us typed fields and positions for error reporting, so a
// malformed suite fails at load time with file:line:col diagnostics
// instead of halfway through a run.
//
// Scenarios (.yaml) describe a single run request: one workload, its
// parameter, the iteration count, and whether to enforce the registered
// checksum. They are the file-level mirror of a runner.Request.
//
// Loading and validation are separate passes: loading only cares that the
// file parses into the right shape, validation checks the contents against
// the workload registry and the runner's limits.
package suite
