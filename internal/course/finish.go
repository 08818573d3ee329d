package course

import "github.com/go-gl/mathgl/mgl64"

// FinishTrigger fires once per stage when the player stands on the finish
// plaza. It re-arms itself whenever it sees a course of a new generation.
type FinishTrigger struct {
	Proximity float64

	generation uint64
	fired      bool
}

// NewFinishTrigger creates a trigger with the given probe proximity.
func NewFinishTrigger(proximity float64) *FinishTrigger {
	return &FinishTrigger{Proximity: proximity}
}

// Arm resets the trigger for a course generation.
func (t *FinishTrigger) Arm(generation uint64) {
	t.generation = generation
	t.fired = false
}

// Fired reports whether the trigger has fired since it was last armed.
func (t *FinishTrigger) Fired() bool {
	return t.fired
}

// Observe checks one probe result. It returns true exactly once: on the
// first hit against the finish platform that is within proximity while the
// player is inside the plaza footprint.
func (t *FinishTrigger) Observe(c *Course, hit Hit, pos mgl64.Vec3) bool {
	if c == nil {
		return false
	}
	if c.Generation != t.generation {
		t.Arm(c.Generation)
	}
	if t.fired {
		return false
	}
	if hit.Surface != SurfacePlatform || hit.ID != c.FinishID() {
		return false
	}
	if hit.Distance > t.Proximity {
		return false
	}
	if !c.Finish().Box.ContainsXZ(pos) {
		return false
	}
	t.fired = true
	return true
}
