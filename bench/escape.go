package bench

import (
	"sync/atomic"
	"unsafe"
)

// discard is the default escape target. It must not be inlined: once
// inlined into Escape the indirection could collapse into a visibly empty
// direct call, which the compiler is allowed to remove.
//
//go:noinline
func discard(unsafe.Pointer) {}

// escapeTarget is the opaque indirection the barrier routes through.
//
// Because this is a mutable package-level function value, the compiler
// cannot resolve the callee at any Escape call site and must assume it may
// read or write through the pointer. That assumption is the whole
// mechanism; see the package doc's CRITICAL INVARIANT.
//
// Write-once: SetEscapeTarget may replace it exactly once, before first
// concurrent use. Mutation after use began is undefined and disallowed.
var escapeTarget func(unsafe.Pointer) = discard

// escapeConfigured guards the single allowed override of escapeTarget.
var escapeConfigured atomic.Bool

// Escape forces the compiler to treat the pointed-to value as used.
//
// The value is never inspected, retained, or modified; p only has to be a
// well-formed pointer for the duration of the call. Total: no error
// states, no observable effect beyond the optimization barrier.
func Escape(p unsafe.Pointer) {
	escapeTarget(p)
}

// Sink is the typed convenience form of Escape.
//
// Wrap every value whose computation must not be optimized away:
//
//	sum := fold(add, 0, xs)
//	bench.Sink(&sum)
func Sink[T any](v *T) {
	escapeTarget(unsafe.Pointer(v))
}

// SetEscapeTarget installs fn as the barrier target, replacing the
// built-in no-op. An environment that wants to genuinely consume escaped
// values (real instrumentation, black-box verification) configures this
// during startup.
//
// The cell is write-once: a second call panics, and calling after Escape
// has been used concurrently is undefined. fn must not be nil.
func SetEscapeTarget(fn func(unsafe.Pointer)) {
	if fn == nil {
		panic("bench: nil escape target")
	}
	if !escapeConfigured.CompareAndSwap(false, true) {
		panic("bench: escape target already configured")
	}
	escapeTarget = fn
}
