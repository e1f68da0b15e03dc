package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // Left arrow, A - turn the tower one step counter-clockwise
	ActionRotateRight        // Right arrow, D - turn the tower one step clockwise
	ActionStart              // Space, Enter - start a run from the title screen
	ActionPause              // P, Escape - pause/unpause game
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// RotationDelta is the tower rotation (radians) accumulated from drag
	// input since the previous frame.
	RotationDelta float64

	// FrameDelta is the elapsed time in reference frames (1.0 = one frame at
	// the reference rate). Games cap it before integrating.
	FrameDelta float64
}

// NewInputFrame creates an empty input frame spanning one reference frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:    make(map[Action]bool),
		FrameDelta: 1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Rotate accumulates a rotation delta for this frame.
func (f *InputFrame) Rotate(delta float64) {
	f.RotationDelta += delta
}

// Clear resets all actions and accumulated rotation for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.RotationDelta = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.RotationDelta = f.RotationDelta
	clone.FrameDelta = f.FrameDelta
	return clone
}
