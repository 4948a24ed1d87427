// Package bench is the instrumentation surface compiled into benchmark
// workloads.
//
// It deliberately does almost nothing. A workload calls Start and End to
// delimit the region an external harness may time, and routes results
// through Escape or Sink so the compiler cannot prove the measured
// computation is dead. That is the entire contract: the package performs
// no timing, records nothing, and talks to no host.
//
// ARCHITECTURE:
//
// Two independent primitives:
//
// Region markers (Start/End):
// Resolve to no-ops unless a harness substitutes its own Hooks via
// SetHooks. Workload bodies only ever call Start and End, so swapping the
// backend never requires recompiling them. No pairing or nesting is
// enforced; callers may invoke the markers in any order, any number of
// times.
//
// Escape barrier (Escape/Sink):
// A call routed through a package-level function value whose target the
// compiler cannot resolve statically. Because the callee is unknown at
// compile time, the optimizer must assume it could read or write through
// the pointer, and so must preserve both the call and the computation
// feeding it. The default target is a noinline no-op that discards the
// address.
//
// CRITICAL INVARIANT:
//
// The escape must be opaque to static analysis, not merely empty. A direct
// call to a visibly empty function is exactly what an optimizer is allowed
// to inline and discard; the indirection through a mutable function value
// is what removes that permission. Do not "simplify" escapeTarget into a
// direct call.
//
// CONCURRENCY:
//
// Both primitives are stateless per call and safe for unsynchronized
// concurrent use. The two process-wide cells (the Hooks value and the
// escape target) follow a configure-once discipline: install overrides
// before concurrent use begins and never mutate them afterwards.
package bench
