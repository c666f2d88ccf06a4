package core

// Action represents a semantic simulation action, abstracted from physical
// key presses. The platform maps raw input to actions so the sim core never
// sees key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // Up arrow, k - step the entity up
	ActionMoveDown         // Down arrow, j - step the entity down
	ActionMoveLeft         // Left arrow, h - step the entity left
	ActionMoveRight        // Right arrow, l - step the entity right
	ActionJump             // J - vertical jump impulse
	ActionLaunch           // Space - toggle the projectile launch preview
	ActionTrack            // T - toggle the target tracking line
	ActionPause            // P, Escape - pause/unpause the simulation
	ActionQuit             // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionLaunch:
		return "Launch"
	case ActionTrack:
		return "Track"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// the actions triggered this frame plus the pointer state.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX, PointerY hold the last known pointer position in
	// presentation (screen cell) coordinates. The position persists
	// across frames; PointerValid is false until the first motion event.
	PointerX     int
	PointerY     int
	PointerValid bool

	// Clicked is set when the primary button was pressed this frame.
	// The click position is the pointer position.
	Clicked bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
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

// SetPointer records a pointer motion event.
func (f *InputFrame) SetPointer(x, y int) {
	f.PointerX = x
	f.PointerY = y
	f.PointerValid = true
}

// SetClick records a primary-button press at the given position.
func (f *InputFrame) SetClick(x, y int) {
	f.SetPointer(x, y)
	f.Clicked = true
}

// Clear resets per-frame state (actions and click) for the next frame.
// The pointer position is sticky and survives Clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	clone.PointerValid = f.PointerValid
	clone.Clicked = f.Clicked
	return clone
}
