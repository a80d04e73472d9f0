package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, k - move cursor up
	ActionDown              // Down arrow, j - move cursor down
	ActionLeft              // Left arrow, h - move cursor left
	ActionRight             // Right arrow, l - move cursor right
	ActionToggleCell        // Enter, x - toggle the cell under the cursor
	ActionStep              // N, . - apply a single generation
	ActionPause             // Space, P - pause/resume
	ActionClear             // C - kill every cell
	ActionRandomize         // R - random soup
	ActionRecenter          // 0 - move the camera back to the origin
	ActionPanUp             // w, shift+up - pan camera
	ActionPanDown           // s, shift+down
	ActionPanLeft           // a, shift+left
	ActionPanRight          // d, shift+right
	ActionFaster            // +, = - shorten the step interval
	ActionSlower            // - - lengthen the step interval
	ActionSave              // ctrl+s - persist the board
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
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
	case ActionToggleCell:
		return "ToggleCell"
	case ActionStep:
		return "Step"
	case ActionPause:
		return "Pause"
	case ActionClear:
		return "Clear"
	case ActionRandomize:
		return "Randomize"
	case ActionRecenter:
		return "Recenter"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionSave:
		return "Save"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen position in characters.
type Point struct {
	X, Y int
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks holds screen positions of primary mouse clicks, in arrival order.
	Clicks []Point
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

// Click records a mouse click at a screen position.
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}
