package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up arrow
	ActionBack               // S, Down arrow
	ActionStrafeLeft         // A
	ActionStrafeRight        // D
	ActionTurnLeft           // Left arrow, J
	ActionTurnRight          // Right arrow, L
	ActionSprint             // Shift (upper-case movement keys in a terminal)
	ActionSlide              // C
	ActionJump               // Space
	ActionSuperJump          // E, Q
	ActionPause              // P, Escape
	ActionRestart            // R - restart the current stage
	ActionNextStage          // N, Enter - continue after a stage is cleared
	ActionTogglePOV          // V
	ActionQuit               // Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionSprint:
		return "Sprint"
	case ActionSlide:
		return "Slide"
	case ActionJump:
		return "Jump"
	case ActionSuperJump:
		return "SuperJump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNextStage:
		return "NextStage"
	case ActionTogglePOV:
		return "TogglePOV"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Joystick is an analog stick reading with both axes in [-1, 1].
// Y grows downward, as reported by touch and mouse surfaces.
type Joystick struct {
	X, Y float64
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions holds every action that is down during this tick.
	Actions map[Action]bool

	// Joystick is nil unless an analog source is active. When set it
	// replaces the directional keys for the tick.
	Joystick *Joystick

	// Elapsed is the wall time in seconds since the previous tick.
	Elapsed float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as down for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is down this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the joystick for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Joystick = nil
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Joystick != nil {
		js := *f.Joystick
		clone.Joystick = &js
	}
	clone.Elapsed = f.Elapsed
	return clone
}

// DefaultHoldWindow covers the typical terminal auto-repeat delay, so a held
// key keeps its action alive until the repeats start arriving.
const DefaultHoldWindow = 550 * time.Millisecond

// HoldState turns key presses into held actions. Terminals report presses
// and auto-repeats but never releases, so a latched action stays down until
// the hold window passes without another press. Pulse actions (jumps, menu
// keys) are down for exactly one frame.
type HoldState struct {
	window time.Duration
	until  map[Action]time.Time
	pulses map[Action]bool
}

// NewHoldState creates a hold tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldState(window time.Duration) *HoldState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldState{
		window: window,
		until:  make(map[Action]time.Time),
		pulses: make(map[Action]bool),
	}
}

// Latched reports whether an action is held across frames rather than pulsed.
func Latched(a Action) bool {
	switch a {
	case ActionForward, ActionBack, ActionStrafeLeft, ActionStrafeRight,
		ActionTurnLeft, ActionTurnRight, ActionSprint, ActionSlide:
		return true
	}
	return false
}

// Press records a key press at the given time.
func (h *HoldState) Press(a Action, now time.Time) {
	if a == ActionNone {
		return
	}
	if !Latched(a) {
		h.pulses[a] = true
		return
	}
	h.until[a] = now.Add(h.window)
	// Opposite directions cancel each other immediately.
	if opp, ok := opposite(a); ok {
		delete(h.until, opp)
	}
}

// Frame builds the input frame for a tick at time now and consumes pulses.
func (h *HoldState) Frame(now time.Time, elapsed float64) InputFrame {
	frame := NewInputFrame()
	frame.Elapsed = elapsed
	for a, deadline := range h.until {
		if now.Before(deadline) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.pulses {
		frame.Set(a)
		delete(h.pulses, a)
	}
	return frame
}

// Reset forgets every held and pending action.
func (h *HoldState) Reset() {
	clear(h.until)
	clear(h.pulses)
}

func opposite(a Action) (Action, bool) {
	switch a {
	case ActionForward:
		return ActionBack, true
	case ActionBack:
		return ActionForward, true
	case ActionStrafeLeft:
		return ActionStrafeRight, true
	case ActionStrafeRight:
		return ActionStrafeLeft, true
	case ActionTurnLeft:
		return ActionTurnRight, true
	case ActionTurnRight:
		return ActionTurnLeft, true
	}
	return ActionNone, false
}
