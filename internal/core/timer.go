package core

// Timer counts down elapsed seconds. The zero value is an expired timer.
// Games drive it with the real frame delta so durations hold under any
// frame rate.
type Timer struct {
	remaining float64
	duration  float64
}

// Start (re)arms the timer for d seconds.
func (t *Timer) Start(d float64) {
	if d < 0 {
		d = 0
	}
	t.remaining = d
	t.duration = d
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	if t.remaining <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Active reports whether time remains.
func (t Timer) Active() bool {
	return t.remaining > 0
}

// Remaining returns the seconds left.
func (t Timer) Remaining() float64 {
	return t.remaining
}

// Fraction returns remaining/duration in [0, 1]; 0 when never started.
func (t Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return ClampF(t.remaining/t.duration, 0, 1)
}
