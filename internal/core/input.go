package core

// Action is a semantic game action, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow: camera forward, alternate jump
	ActionDown           // S, Down arrow: camera backward
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space
	ActionConfirm        // Enter
	ActionBack           // B, Escape: back to the menu
	ActionRestart        // R: new round after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Jump",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
// The zero value is an empty frame and frames copy by value.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func actionBit(a Action) uint32 {
	if a <= ActionNone || a >= actionCount {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	f.bits |= actionBit(a)
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	bit := actionBit(a)
	return bit != 0 && f.bits&bit != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
