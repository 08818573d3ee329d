package course

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/rng"
)

func TestDecorateDeterministic(t *testing.T) {
	pos := mgl64.Vec3{0, 20, -299}
	size := mgl64.Vec3{70, 3, 70}

	a := Decorate(pos, size, 10, "city")
	b := Decorate(pos, size, 10, "city")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same inputs produced different layouts")
	}
	if len(a) != 10 {
		t.Fatalf("len = %d, want 10", len(a))
	}
}

func TestDecoratePositionIndependence(t *testing.T) {
	size := mgl64.Vec3{35, 2, 35}
	a := Decorate(mgl64.Vec3{57.5, 55, -279}, size, 6, "city")
	b := Decorate(mgl64.Vec3{-57.5, 75, -259}, size, 6, "city")
	if reflect.DeepEqual(a, b) {
		t.Error("platforms at different positions share a layout")
	}
}

func TestDecorateBounds(t *testing.T) {
	size := mgl64.Vec3{120, 4, 120}
	for _, d := range Decorate(mgl64.Vec3{0, -2, 0}, size, 200, "forest") {
		if math.Abs(d.Position.X()) > size.X()*footprint/2 || math.Abs(d.Position.Z()) > size.Z()*footprint/2 {
			t.Errorf("prop outside footprint: %v", d.Position)
		}
		if d.Position.Y() != size.Y()/2 {
			t.Errorf("prop not on top face: y=%v", d.Position.Y())
		}
		if d.RotationY < 0 || d.RotationY >= math.Pi {
			t.Errorf("rotation out of range: %v", d.RotationY)
		}
		if d.Scale < 1 || d.Scale >= 2.5 {
			t.Errorf("scale out of range: %v", d.Scale)
		}
		if d.Kind < DecorTree || d.Kind >= decorKinds {
			t.Errorf("kind out of range: %v", d.Kind)
		}
	}
}

func TestDecorateDrawOrder(t *testing.T) {
	pos := mgl64.Vec3{0, 75, -805}
	size := mgl64.Vec3{120, 5, 150}
	items := Decorate(pos, size, 3, "desert")

	// Replay the stream: five draws per prop in a fixed order.
	s := rng.New(rng.Mix(rng.SeedFromPosition(pos), "desert"))
	for i, d := range items {
		kind := DecorKind(s.Intn(int(decorKinds)))
		x := (s.Float() - 0.5) * size.X() * footprint
		z := (s.Float() - 0.5) * size.Z() * footprint
		rot := s.Float() * math.Pi
		scale := 1 + s.Float()*1.5
		if d.Kind != kind || d.Position.X() != x || d.Position.Z() != z || d.RotationY != rot || d.Scale != scale {
			t.Errorf("prop %d does not match replayed draws", i)
		}
	}
	if s.Draws() != 15 {
		t.Errorf("draws = %d, want 15", s.Draws())
	}
}

func TestDecorateZeroCount(t *testing.T) {
	if got := Decorate(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, 0, ""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestScatter(t *testing.T) {
	origin := mgl64.Vec3{0, 0, -650}
	a := Scatter(42, 400, 3500, origin)
	b := Scatter(42, 400, 3500, origin)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("backdrop not reproducible")
	}
	for _, c := range a {
		rel := c.Position.Sub(origin)
		if math.Abs(rel.X()) > 1750 || math.Abs(rel.Z()) > 1750 {
			t.Errorf("column outside range: %v", rel)
		}
		if rel.Y() < -400 || rel.Y() >= -300 {
			t.Errorf("column depth out of range: %v", rel.Y())
		}
		if c.Height < 100 || c.Height >= 600 {
			t.Errorf("column height out of range: %v", c.Height)
		}
	}
	if reflect.DeepEqual(a, Scatter(43, 400, 3500, origin)) {
		t.Error("different seeds gave the same backdrop")
	}
}
