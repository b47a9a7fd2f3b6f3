package tui

import (
	"time"

	"github.com/vovakirdan/course-arcade/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A
// direction counts as held for a window after its last press: long enough
// to bridge the delay before auto-repeat starts, then short once repeats
// are arriving so letting go stops movement quickly.
const (
	initialHoldWindow = 500 * time.Millisecond
	repeatHoldWindow  = 150 * time.Millisecond
)

type hold struct {
	last      time.Time
	repeating bool
}

// HoldTracker derives held movement keys from press events.
type HoldTracker struct {
	holds map[core.Action]*hold
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{holds: make(map[core.Action]*hold)}
}

// Press records a press of a movement action. A press while the action is
// still held is an auto-repeat. Pressing a direction releases its opposite.
func (t *HoldTracker) Press(a core.Action, now time.Time) {
	if a.Opposite() == core.ActionNone {
		return
	}
	delete(t.holds, a.Opposite())

	if h, ok := t.holds[a]; ok && t.active(h, now) {
		h.last = now
		h.repeating = true
		return
	}
	t.holds[a] = &hold{last: now}
}

// Held reports whether the action is considered down at now.
func (t *HoldTracker) Held(a core.Action, now time.Time) bool {
	h, ok := t.holds[a]
	return ok && t.active(h, now)
}

// Apply marks every held action on the frame and forgets expired ones.
func (t *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, h := range t.holds {
		if !t.active(h, now) {
			delete(t.holds, a)
			continue
		}
		frame.Hold(a)
	}
}

// Clear releases everything.
func (t *HoldTracker) Clear() {
	clear(t.holds)
}

func (t *HoldTracker) active(h *hold, now time.Time) bool {
	window := initialHoldWindow
	if h.repeating {
		window = repeatHoldWindow
	}
	return now.Sub(h.last) < window
}
