package movement

import (
	"math"

	"github.com/vovakirdan/parkour-run/internal/core"
)

// Intent is the resolved player input for one tick.
type Intent struct {
	Forward   float64 // -1..1 from discrete keys
	Side      float64 // -1..1, positive is right
	Turn      float64 // -1..1, positive turns left
	Joystick  *core.Joystick
	Sprint    bool
	Slide     bool
	Jump      bool
	SuperJump bool
}

// IntentFromFrame maps held actions onto an intent.
func IntentFromFrame(f core.InputFrame) Intent {
	in := Intent{
		Forward:   axis(f.Has(core.ActionForward), f.Has(core.ActionBack)),
		Side:      axis(f.Has(core.ActionStrafeRight), f.Has(core.ActionStrafeLeft)),
		Turn:      axis(f.Has(core.ActionTurnLeft), f.Has(core.ActionTurnRight)),
		Sprint:    f.Has(core.ActionSprint),
		Slide:     f.Has(core.ActionSlide),
		Jump:      f.Has(core.ActionJump),
		SuperJump: f.Has(core.ActionSuperJump),
	}
	if f.Joystick != nil {
		j := *f.Joystick
		in.Joystick = &j
	}
	return in
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// resolved is the movement request after joystick override.
type resolved struct {
	forward float64
	side    float64
	moving  bool
	sprint  bool
}

// resolve applies the joystick override, the deadzone and the sprint rule.
// A present joystick replaces the keys entirely for the tick.
func (in Intent) resolve(deadzone, joystickRun float64) resolved {
	r := resolved{forward: in.Forward, side: in.Side, sprint: in.Sprint}
	if in.Joystick != nil {
		r.side = clampUnit(in.Joystick.X)
		r.forward = -clampUnit(in.Joystick.Y)
		if math.Hypot(r.side, r.forward) > joystickRun {
			r.sprint = true
		}
	}
	r.moving = math.Abs(r.forward) > deadzone || math.Abs(r.side) > deadzone
	return r
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
