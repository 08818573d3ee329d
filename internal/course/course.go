// Package course builds the parkour course: a fixed template of platforms
// and bridges, scaled by difficulty, translated per stage and decorated
// from a seeded stream. Courses are immutable once built.
package course

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
)

// Platform is an axis-aligned slab the player can stand on.
type Platform struct {
	ID          int
	Name        string
	Box         Box
	Supports    bool // Draws support pillars underneath
	Accent      bool // Glowing top trim
	Finish      bool // Terminal platform of the stage
	Decorations []Decoration
}

// StructureKind identifies a cosmetic structure.
type StructureKind int

const (
	StructurePost StructureKind = iota
	StructureBeam
	StructureSign
	StructurePillar
)

// Structure is purely visual geometry. It is never probed.
type Structure struct {
	Kind StructureKind
	Box  Box
}

// Column is one element of the scattered backdrop.
type Column struct {
	Position mgl64.Vec3
	Height   float64
}

// Key identifies the inputs a course was built from. A change in any
// field requires a rebuild.
type Key struct {
	Stage      int
	Theme      config.Theme
	Difficulty config.DifficultyPreset
}

func (k Key) String() string {
	return fmt.Sprintf("stage %d/%s/%s", k.Stage, k.Theme, k.Difficulty)
}

// Anchor is a templated distance along the traversal axis, measured from
// the stage origin. Every anchor scales linearly with the gap multiplier.
type Anchor struct {
	Name  string
	Depth float64
}

// Course is one stage worth of geometry.
type Course struct {
	Key        Key
	Generation uint64
	Origin     mgl64.Vec3 // Stage origin; the template is laid out relative to it
	Spawn      mgl64.Vec3
	Palette    Palette
	Params     Params
	Platforms  []Platform
	Bridges    []Bridge
	Structures []Structure
	Backdrop   []Column
	Anchors    []Anchor

	finish int
}

// Finish returns the terminal platform.
func (c *Course) Finish() Platform {
	return c.Platforms[c.finish]
}

// FinishID returns the ID of the terminal platform.
func (c *Course) FinishID() int {
	return c.Platforms[c.finish].ID
}

// Gaps returns the distances between consecutive anchors, starting from
// the stage origin.
func (c *Course) Gaps() []float64 {
	gaps := make([]float64, len(c.Anchors))
	prev := 0.0
	for i, a := range c.Anchors {
		gaps[i] = a.Depth - prev
		prev = a.Depth
	}
	return gaps
}

// Bounds returns the box enclosing every probed surface.
func (c *Course) Bounds() Box {
	var b Box
	first := true
	add := func(o Box) {
		if first {
			b = o
			first = false
			return
		}
		b = b.Union(o)
	}
	for _, p := range c.Platforms {
		add(p.Box)
	}
	for _, br := range c.Bridges {
		add(br.Bounds())
	}
	return b
}

// DecorationCount returns the total number of props on the course.
func (c *Course) DecorationCount() int {
	n := 0
	for _, p := range c.Platforms {
		n += len(p.Decorations)
	}
	return n
}
