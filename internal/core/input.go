package core

// Action represents a semantic simulator action, abstracted from physical
// key presses. The virtual-hand demo maps keys to these; the real game
// never sees them because its input is landmark frames.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move virtual hand left
	ActionRight           // D, Right arrow - move virtual hand right
	ActionUp              // W, Up arrow - move virtual hand up
	ActionDown            // S, Down arrow - move virtual hand down
	ActionFlick           // Space - flick the hand upward (throw gesture)
	ActionPresence        // H - toggle hand presence (simulate tracking loss)
	ActionSwap            // Tab - switch between left and right hand
	ActionStart           // Enter - start/stop the session
	ActionQuit            // Q, Ctrl+C - exit the simulator
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
	case ActionFlick:
		return "Flick"
	case ActionPresence:
		return "Presence"
	case ActionSwap:
		return "Swap"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the simulator input state for a single tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
