package core

import (
	"testing"
	"time"
)

func TestHoldStateLatchesMovement(t *testing.T) {
	h := NewHoldState(500 * time.Millisecond)
	start := time.Unix(0, 0)

	h.Press(ActionForward, start)

	if f := h.Frame(start.Add(100*time.Millisecond), 0.016); !f.Has(ActionForward) {
		t.Error("forward should still be held inside the hold window")
	}
	if f := h.Frame(start.Add(600*time.Millisecond), 0.016); f.Has(ActionForward) {
		t.Error("forward should be released after the hold window")
	}
}

func TestHoldStateRepeatExtendsHold(t *testing.T) {
	h := NewHoldState(300 * time.Millisecond)
	start := time.Unix(0, 0)

	h.Press(ActionStrafeLeft, start)
	h.Press(ActionStrafeLeft, start.Add(250*time.Millisecond))

	if f := h.Frame(start.Add(500*time.Millisecond), 0.016); !f.Has(ActionStrafeLeft) {
		t.Error("a repeated press should extend the hold")
	}
}

func TestHoldStatePulsesLastOneFrame(t *testing.T) {
	h := NewHoldState(0)
	now := time.Unix(0, 0)

	h.Press(ActionJump, now)

	if f := h.Frame(now, 0.016); !f.Has(ActionJump) {
		t.Error("jump should be down on the frame after the press")
	}
	if f := h.Frame(now, 0.016); f.Has(ActionJump) {
		t.Error("jump should not repeat on the following frame")
	}
}

func TestHoldStateOppositeCancels(t *testing.T) {
	h := NewHoldState(time.Second)
	now := time.Unix(0, 0)

	h.Press(ActionForward, now)
	h.Press(ActionBack, now)

	f := h.Frame(now, 0.016)
	if f.Has(ActionForward) {
		t.Error("pressing back should cancel forward")
	}
	if !f.Has(ActionBack) {
		t.Error("back should be held")
	}
}

func TestHoldStateFrameCarriesElapsed(t *testing.T) {
	h := NewHoldState(time.Second)
	f := h.Frame(time.Unix(0, 0), 0.033)
	if f.Elapsed != 0.033 {
		t.Errorf("Elapsed = %v, expected 0.033", f.Elapsed)
	}
}

func TestInputFrameCloneCopiesJoystick(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSprint)
	f.Joystick = &Joystick{X: 0.5, Y: -1}

	c := f.Clone()
	f.Joystick.X = 0

	if c.Joystick == nil || c.Joystick.X != 0.5 {
		t.Errorf("clone should own its joystick reading, got %+v", c.Joystick)
	}
	if !c.Has(ActionSprint) {
		t.Error("clone should keep actions")
	}
}

func TestHoldStateResetDropsEverything(t *testing.T) {
	h := NewHoldState(500 * time.Millisecond)
	start := time.Unix(0, 0)

	h.Press(ActionForward, start)
	h.Press(ActionJump, start)
	h.Reset()

	f := h.Frame(start.Add(10*time.Millisecond), 0.016)
	if f.Has(ActionForward) || f.Has(ActionJump) {
		t.Error("reset should drop held and pulsed actions")
	}
}
