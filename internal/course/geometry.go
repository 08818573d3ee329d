package course

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BridgeThickness is the deck thickness of every bridge.
const BridgeThickness = 1.2

var (
	axisY = mgl64.Vec3{0, 1, 0}
	down  = mgl64.Vec3{0, -1, 0}
)

// Box is an axis-aligned box given by centre and half extent.
type Box struct {
	Center mgl64.Vec3
	Half   mgl64.Vec3
}

// BoxFromSize builds a box from a centre and full size.
func BoxFromSize(center, size mgl64.Vec3) Box {
	return Box{Center: center, Half: size.Mul(0.5)}
}

// Min returns the lowest corner.
func (b Box) Min() mgl64.Vec3 { return b.Center.Sub(b.Half) }

// Max returns the highest corner.
func (b Box) Max() mgl64.Vec3 { return b.Center.Add(b.Half) }

// Size returns the full extent.
func (b Box) Size() mgl64.Vec3 { return b.Half.Mul(2) }

// Top returns the height of the upper face.
func (b Box) Top() float64 { return b.Center.Y() + b.Half.Y() }

// Contains reports whether p lies strictly inside the box.
func (b Box) Contains(p mgl64.Vec3) bool {
	d := p.Sub(b.Center)
	return math.Abs(d.X()) < b.Half.X() &&
		math.Abs(d.Y()) < b.Half.Y() &&
		math.Abs(d.Z()) < b.Half.Z()
}

// ContainsXZ reports whether p lies within the box footprint, edges included.
func (b Box) ContainsXZ(p mgl64.Vec3) bool {
	return math.Abs(p.X()-b.Center.X()) <= b.Half.X() &&
		math.Abs(p.Z()-b.Center.Z()) <= b.Half.Z()
}

// Translate returns the box moved by offset.
func (b Box) Translate(offset mgl64.Vec3) Box {
	return Box{Center: b.Center.Add(offset), Half: b.Half}
}

// Union returns the smallest box holding both.
func (b Box) Union(o Box) Box {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	lo := mgl64.Vec3{math.Min(bmin.X(), omin.X()), math.Min(bmin.Y(), omin.Y()), math.Min(bmin.Z(), omin.Z())}
	hi := mgl64.Vec3{math.Max(bmax.X(), omax.X()), math.Max(bmax.Y(), omax.Y()), math.Max(bmax.Z(), omax.Z())}
	return Box{Center: lo.Add(hi).Mul(0.5), Half: hi.Sub(lo).Mul(0.5)}
}

// Bridge is an oriented box spanning two endpoints. Its local Y axis runs
// from Start to End, local X is the width and local Z the deck thickness.
type Bridge struct {
	Start       mgl64.Vec3
	End         mgl64.Vec3
	Width       float64
	Length      float64
	Center      mgl64.Vec3
	Orientation mgl64.Quat
	Accent      bool // Glowing edge rails
}

// NewBridge computes the oriented box between start and end. The
// orientation is the shortest-arc rotation taking +Y onto the travel
// direction, so inclined spans need no special casing.
func NewBridge(start, end mgl64.Vec3, width float64, accent bool) Bridge {
	span := end.Sub(start)
	length := span.Len()
	orientation := mgl64.QuatIdent()
	if length > 0 {
		orientation = mgl64.QuatBetweenVectors(axisY, span.Mul(1/length))
	}
	return Bridge{
		Start:       start,
		End:         end,
		Width:       width,
		Length:      length,
		Center:      start.Add(end).Mul(0.5),
		Orientation: orientation,
		Accent:      accent,
	}
}

// Half returns the half extents in the bridge's local frame.
func (b Bridge) Half() mgl64.Vec3 {
	return mgl64.Vec3{b.Width / 2, b.Length / 2, BridgeThickness / 2}
}

// Direction returns the unit vector from Start towards End.
func (b Bridge) Direction() mgl64.Vec3 {
	return b.Orientation.Rotate(axisY)
}

// Normal returns the deck's upward face normal.
func (b Bridge) Normal() mgl64.Vec3 {
	return b.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

// ToLocal maps a world point into the bridge frame.
func (b Bridge) ToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return b.Orientation.Conjugate().Rotate(p.Sub(b.Center))
}

// ToWorld maps a point in the bridge frame back to world space.
func (b Bridge) ToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return b.Orientation.Rotate(p).Add(b.Center)
}

// Contains reports whether p lies strictly inside the oriented box.
func (b Bridge) Contains(p mgl64.Vec3) bool {
	l := b.ToLocal(p)
	h := b.Half()
	return math.Abs(l.X()) < h.X() && math.Abs(l.Y()) < h.Y() && math.Abs(l.Z()) < h.Z()
}

// Bounds returns the world-space axis-aligned box enclosing the bridge.
func (b Bridge) Bounds() Box {
	h := b.Half()
	var lo, hi mgl64.Vec3
	first := true
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				c := b.ToWorld(mgl64.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()})
				if first {
					lo, hi = c, c
					first = false
					continue
				}
				lo = mgl64.Vec3{math.Min(lo.X(), c.X()), math.Min(lo.Y(), c.Y()), math.Min(lo.Z(), c.Z())}
				hi = mgl64.Vec3{math.Max(hi.X(), c.X()), math.Max(hi.Y(), c.Y()), math.Max(hi.Z(), c.Z())}
			}
		}
	}
	return Box{Center: lo.Add(hi).Mul(0.5), Half: hi.Sub(lo).Mul(0.5)}
}

// rayBox intersects a ray with an axis-aligned box centred on the origin
// using the slab method. It returns the entry distance. Rays starting
// inside the box report no hit.
func rayBox(origin, dir, half mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		o, d, h := origin[i], dir[i], half[i]
		if math.Abs(d) < 1e-12 {
			if o < -h || o > h {
				return 0, false
			}
			continue
		}
		t1 := (-h - o) / d
		t2 := (h - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 {
		// Origin inside, or box entirely behind the ray.
		return 0, false
	}
	return tmin, true
}

// rayDownBox is the probe against an axis-aligned box.
func rayDownBox(origin mgl64.Vec3, b Box) (float64, bool) {
	return rayBox(origin.Sub(b.Center), down, b.Half)
}

// rayDownBridge is the probe against a bridge, done in the bridge frame.
func rayDownBridge(origin mgl64.Vec3, b Bridge) (float64, bool) {
	if b.Length == 0 {
		return 0, false
	}
	inv := b.Orientation.Conjugate()
	return rayBox(inv.Rotate(origin.Sub(b.Center)), inv.Rotate(down), b.Half())
}
