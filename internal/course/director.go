package course

import (
	"github.com/vovakirdan/parkour-run/internal/config"
)

// Director owns the current course. Whenever the stage, theme or
// difficulty changes it builds a fresh course under a new generation and
// drops the old one; nothing is edited in place.
type Director struct {
	cfg        config.ParkourConfig
	current    *Course
	generation uint64
}

// NewDirector creates a director with no course built yet.
func NewDirector(cfg config.ParkourConfig) *Director {
	return &Director{cfg: cfg}
}

// Ensure returns the course for settings and stage, rebuilding if the
// key differs from the current course. The second result reports whether
// a rebuild happened.
func (d *Director) Ensure(s config.Settings, stage int) (*Course, bool) {
	p := NewParams(d.cfg, s, stage)
	if d.current != nil && d.current.Key == p.Key() {
		return d.current, false
	}
	d.generation++
	c := Build(p)
	c.Generation = d.generation
	d.current = c
	return c, true
}

// Current returns the live course, or nil before the first Ensure.
func (d *Director) Current() *Course {
	return d.current
}

// Generation returns the generation of the live course.
func (d *Director) Generation() uint64 {
	return d.generation
}
