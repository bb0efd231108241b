package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - rotate clockwise (blocks), menu up
	ActionDown             // S, Down arrow - soft drop (blocks), menu down
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionPrimary          // Space - hard drop (blocks), fire (invaders)
	ActionRotateCCW        // Z - rotate counterclockwise
	ActionConfirm          // Enter - confirm selection, advance wave
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPrimary:
		return "Primary"
	case ActionRotateCCW:
		return "RotateCCW"
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
	default:
		return "Unknown"
	}
}

// InputFrame represents the input of a single player during one simulation tick.
// Actions are kept in arrival order so games can replay them exactly as pressed;
// the same action may appear more than once.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, got := range f.Actions {
		if got == a {
			n++
		}
	}
	return n
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if f.Actions == nil {
		return InputFrame{}
	}
	clone := make([]Action, len(f.Actions))
	copy(clone, f.Actions)
	return InputFrame{Actions: clone}
}
