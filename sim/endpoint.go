package sim

// WindowTicks is the width of a rate-limit window in ticks of virtual time.
// Windows are anchored at multiples of WindowTicks from simulation start
// (fixed window, not sliding).
const WindowTicks int64 = 60

// Endpoint models one externally rate-limited resource. It admits at most
// rpmLimit calls inside any fixed window. State is mutated only by the
// RateLimitedClient at call time; the clock is always passed in explicitly so
// the same endpoint state yields the same decisions regardless of caller.
type Endpoint struct {
	id        int // 1-based position in the fallback chain
	rpmLimit  int
	windowIdx int64 // index of the window the counter belongs to
	admitted  int   // admissions inside the current window
}

// NewEndpoint creates an endpoint with the given id and per-window admission cap.
func NewEndpoint(id, rpmLimit int) *Endpoint {
	return &Endpoint{id: id, rpmLimit: rpmLimit}
}

// TryAdmit admits or denies a call at tick now. Rolling into a new window
// resets the counter; the roll is lazy, evaluated only when a call arrives.
func (e *Endpoint) TryAdmit(now int64) bool {
	idx := now / WindowTicks
	if idx != e.windowIdx {
		e.windowIdx = idx
		e.admitted = 0
	}
	if e.admitted < e.rpmLimit {
		e.admitted++
		return true
	}
	return false
}

// ID returns the endpoint's 1-based identifier.
func (e *Endpoint) ID() int {
	return e.id
}

// RPMLimit returns the per-window admission cap.
func (e *Endpoint) RPMLimit() int {
	return e.rpmLimit
}

// Admitted returns the number of admissions in the window current at tick now.
func (e *Endpoint) Admitted(now int64) int {
	if now/WindowTicks != e.windowIdx {
		return 0
	}
	return e.admitted
}
