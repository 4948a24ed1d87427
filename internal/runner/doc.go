// Package runner is the in-repo external harness: it executes registered
// workloads and times their marked regions.
//
// The runner never reaches into workload internals. It installs a
// timestamp-recording bench.Hooks backend, calls the workload through its
// public one-parameter signature, and reads the per-iteration durations
// back out. This is the substitution contract from package bench made
// concrete: instrumented bodies run unmodified whether the backend is the
// built-in no-op pair or the runner's recording pair.
//
// The bench hook cell is process-wide, so a Runner must not execute
// concurrently with another Runner or with anything else that swaps hooks.
// The single-runner discipline mirrors the configure-once rule documented
// in package bench.
package runner
