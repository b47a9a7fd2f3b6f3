package core

import "testing"

func TestInputFramePressedAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Hold(ActionLeft)

	if !f.Has(ActionConfirm) || !f.Held(ActionConfirm) {
		t.Error("pressed action should count as pressed and held")
	}
	if f.Has(ActionLeft) {
		t.Error("held action should not count as a fresh press")
	}
	if !f.Held(ActionLeft) {
		t.Error("held action should be held")
	}

	f.Clear()
	if f.Held(ActionLeft) || f.Has(ActionConfirm) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected Vec2
	}{
		{"none", nil, V(0, 0)},
		{"left", []Action{ActionLeft}, V(-1, 0)},
		{"down-right", []Action{ActionDown, ActionRight}, V(1, 1)},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionUp}, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Hold(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) || f.Held(ActionLeft) {
		t.Error("zero InputFrame should report nothing")
	}
	f.Set(ActionQuit)
	f.Hold(ActionUp)
	if !f.Has(ActionQuit) || !f.Held(ActionUp) {
		t.Error("zero InputFrame should lazily allocate")
	}

	clone := f.Clone()
	f.Clear()
	if !clone.Has(ActionQuit) || !clone.Held(ActionUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionOpposite(t *testing.T) {
	if ActionLeft.Opposite() != ActionRight || ActionUp.Opposite() != ActionDown {
		t.Error("movement opposites wrong")
	}
	if ActionPause.Opposite() != ActionNone {
		t.Error("non-movement actions have no opposite")
	}
}
