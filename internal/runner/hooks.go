package runner

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so tests can substitute a deterministic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// timingHooks implements bench.Hooks by recording a wall-clock duration
// for every start/end pair it observes.
//
// Region markers carry no pairing contract, so the hooks stay permissive:
// an end with no preceding start is ignored, and a second start simply
// restarts the open region.
type timingHooks struct {
	clock Clock

	mu      sync.Mutex
	started time.Time
	open    bool
	samples []time.Duration
}

func newTimingHooks(clock Clock) *timingHooks {
	return &timingHooks{clock: clock}
}

// RegionStart implements bench.Hooks.
func (h *timingHooks) RegionStart() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = h.clock.Now()
	h.open = true
}

// RegionEnd implements bench.Hooks.
func (h *timingHooks) RegionEnd() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.open {
		return
	}
	h.samples = append(h.samples, h.clock.Now().Sub(h.started))
	h.open = false
}

// take returns the recorded samples and resets the hook state.
func (h *timingHooks) take() []time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.samples
	h.samples = nil
	h.open = false
	return out
}
