package bench

// Hooks receives region markers from instrumented workloads.
//
// The default implementation is a no-op pair, which lets a compiled
// workload run in environments that provide no timing host at all. A
// harness that wants real measurements substitutes its own Hooks via
// SetHooks; workload bodies keep calling Start and End unchanged.
type Hooks interface {
	// RegionStart marks the beginning of the region to be timed.
	RegionStart()

	// RegionEnd marks the end of the region to be timed.
	RegionEnd()
}

// noopHooks is the built-in backend: both markers are empty.
type noopHooks struct{}

func (noopHooks) RegionStart() {}
func (noopHooks) RegionEnd()   {}

// hooks is the process-wide backend for Start and End.
//
// Configure-once discipline: SetHooks before concurrent use, never after.
// Reads are unsynchronized on purpose (see package doc).
var hooks Hooks = noopHooks{}

// Start marks the beginning of a timed region.
//
// Safe to call any number of times, in any order relative to End. Cannot
// fail.
func Start() {
	hooks.RegionStart()
}

// End marks the end of a timed region.
//
// Safe to call any number of times, in any order relative to Start. Cannot
// fail.
func End() {
	hooks.RegionEnd()
}

// SetHooks installs h as the backend for Start and End and returns the
// previous backend so callers can restore it. A nil h reinstalls the
// built-in no-op pair.
//
// Must not race with Start or End; install backends before the workload
// begins executing.
func SetHooks(h Hooks) Hooks {
	prev := hooks
	if h == nil {
		h = noopHooks{}
	}
	hooks = h
	return prev
}
