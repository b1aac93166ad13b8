package graphics

// FrameTimer measures elapsed seconds between consecutive frame updates.
type FrameTimer struct {
	now   func() float64
	last  float64
	delta float64
	first bool
}

// NewFrameTimer creates a timer reading from the given clock, typically
// a Context's Time method.
func NewFrameTimer(now func() float64) *FrameTimer {
	return &FrameTimer{now: now, first: true}
}

// Tick records a frame boundary and returns the seconds elapsed since
// the previous one. The first tick returns 0.
func (t *FrameTimer) Tick() float64 {
	current := t.now()
	if t.first {
		t.first = false
		t.delta = 0
	} else {
		t.delta = current - t.last
		if t.delta < 0 {
			t.delta = 0
		}
	}
	t.last = current
	return t.delta
}

// Delta returns the value of the most recent Tick.
func (t *FrameTimer) Delta() float64 {
	return t.delta
}
