package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionConfirm        // Space, Enter - start a new round after win/loss
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - reset the round at any time
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionDebug          // F1, H - toggle hitbox overlay
	ActionMute           // M - toggle sound effects
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse direction for movement actions, ActionNone otherwise.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// InputFrame represents the input state for a single player during one frame.
//
// Actions holds edge-triggered presses (a key went down this frame).
// Holding holds level-triggered state (a key is down right now). A pressed
// action also counts as held for the frame it was pressed in.
type InputFrame struct {
	Actions map[Action]bool
	Holding map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holding: make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held down this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Holding == nil {
		f.Holding = make(map[Action]bool)
	}
	f.Holding[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Held returns true if the action is held down or was pressed this frame.
func (f InputFrame) Held(a Action) bool {
	return f.Holding[a] || f.Has(a)
}

// Direction returns the movement direction implied by held actions,
// with each component in {-1, 0, 1}. Opposite keys cancel out.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Held(ActionLeft) {
		d.X--
	}
	if f.Held(ActionRight) {
		d.X++
	}
	if f.Held(ActionUp) {
		d.Y--
	}
	if f.Held(ActionDown) {
		d.Y++
	}
	return d
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Holding {
		delete(f.Holding, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Holding {
		clone.Holding[k] = v
	}
	return clone
}
