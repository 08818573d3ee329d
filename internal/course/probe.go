package course

import "github.com/go-gl/mathgl/mgl64"

// SurfaceKind identifies what a probe hit.
type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfacePlatform
	SurfaceBridge
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfacePlatform:
		return "platform"
	case SurfaceBridge:
		return "bridge"
	default:
		return "none"
	}
}

// Hit is the result of a ground probe.
type Hit struct {
	Distance float64
	Surface  SurfaceKind
	ID       int // Index into Platforms or Bridges, -1 on a miss
}

// Found reports whether the probe struck a surface.
func (h Hit) Found() bool {
	return h.Surface != SurfaceNone
}

// Miss returns a hit reporting nothing within reach.
func Miss(sentinel float64) Hit {
	return Hit{Distance: sentinel, Surface: SurfaceNone, ID: -1}
}

// ProbeDown casts a ray straight down from origin and returns the nearest
// platform or bridge. Surfaces whose volume contains origin are skipped.
// Decorations, structures and the backdrop are never probed.
func (c *Course) ProbeDown(origin mgl64.Vec3, sentinel float64) Hit {
	best := Miss(sentinel)
	if c == nil {
		return best
	}
	for i := range c.Platforms {
		if d, ok := rayDownBox(origin, c.Platforms[i].Box); ok && d < best.Distance {
			best = Hit{Distance: d, Surface: SurfacePlatform, ID: i}
		}
	}
	for i := range c.Bridges {
		if d, ok := rayDownBridge(origin, c.Bridges[i]); ok && d < best.Distance {
			best = Hit{Distance: d, Surface: SurfaceBridge, ID: i}
		}
	}
	return best
}
