package core

import "testing"

func TestTimerCountsElapsedSeconds(t *testing.T) {
	var tm Timer
	if tm.Active() {
		t.Fatal("zero Timer should be inactive")
	}

	tm.Start(0.85)
	if !tm.Active() {
		t.Fatal("started Timer should be active")
	}

	// Uneven frame deltas must add up to the same duration
	for _, dt := range []float64{0.016, 0.2, 0.05, 0.3} {
		tm.Tick(dt)
	}
	if !tm.Active() {
		t.Errorf("Timer expired early, remaining %v", tm.Remaining())
	}

	tm.Tick(0.3)
	if tm.Active() {
		t.Errorf("Timer should have expired, remaining %v", tm.Remaining())
	}
	if tm.Remaining() != 0 {
		t.Errorf("Remaining() should clamp at 0, got %v", tm.Remaining())
	}
}

func TestTimerFraction(t *testing.T) {
	var tm Timer
	if tm.Fraction() != 0 {
		t.Error("Fraction of unstarted timer should be 0")
	}

	tm.Start(2)
	tm.Tick(0.5)
	if f := tm.Fraction(); f != 0.75 {
		t.Errorf("Fraction() = %v, expected 0.75", f)
	}
}
