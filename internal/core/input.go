package core

// Action is a player intent, independent of the key or button that caused it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLift           // Space, W, Up, left click
	ActionPause          // P, Esc
	ActionRestart        // R, Enter
	ActionQuit           // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLift:    "Lift",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects the actions delivered between two ticks.
// The zero value is an empty frame. ActionNone is never recorded.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= 32 {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was recorded this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < 32 && f.bits&(1<<a) != 0
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear forgets every action, ready for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
