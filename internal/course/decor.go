package course

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/rng"
)

// DecorKind is the type of a cosmetic prop.
type DecorKind int

const (
	DecorTree DecorKind = iota
	DecorCar
	DecorMotorcycle
	DecorBench
	DecorStreetLamp
	DecorPlantBox

	decorKinds
)

// String returns a lowercase name for the prop kind.
func (k DecorKind) String() string {
	switch k {
	case DecorTree:
		return "tree"
	case DecorCar:
		return "car"
	case DecorMotorcycle:
		return "motorcycle"
	case DecorBench:
		return "bench"
	case DecorStreetLamp:
		return "street_lamp"
	case DecorPlantBox:
		return "plant_box"
	default:
		return "unknown"
	}
}

// Decoration is a prop placed on a platform. Position is local to the
// platform centre, with Y on the top face.
type Decoration struct {
	Kind      DecorKind
	Position  mgl64.Vec3
	RotationY float64
	Scale     float64
}

// footprint keeps props away from platform edges.
const footprint = 0.9

// Decorate places count props on a platform of the given size. The seed
// comes from the platform's world position and salt, so equal inputs give
// an identical layout and distinct positions give unrelated ones. Each prop
// consumes exactly five draws: kind, x, z, rotation, scale.
func Decorate(center, size mgl64.Vec3, count int, salt string) []Decoration {
	if count <= 0 {
		return nil
	}
	s := rng.New(rng.Mix(rng.SeedFromPosition(center), salt))
	items := make([]Decoration, 0, count)
	for i := 0; i < count; i++ {
		kind := DecorKind(s.Intn(int(decorKinds)))
		x := (s.Float() - 0.5) * size.X() * footprint
		z := (s.Float() - 0.5) * size.Z() * footprint
		rot := s.Float() * math.Pi
		scale := 1 + s.Float()*1.5
		items = append(items, Decoration{
			Kind:      kind,
			Position:  mgl64.Vec3{x, size.Y() / 2, z},
			RotationY: rot,
			Scale:     scale,
		})
	}
	return items
}

// backdropFootprint is the width and depth of a backdrop column.
const backdropFootprint = 50

// Scatter lays out the static backdrop: count columns spread over a square
// of side span centred on origin, sunk well below the course.
func Scatter(seed uint64, count int, span float64, origin mgl64.Vec3) []Column {
	if count <= 0 {
		return nil
	}
	s := rng.New(seed)
	cols := make([]Column, 0, count)
	for i := 0; i < count; i++ {
		x := (s.Float() - 0.5) * span
		z := (s.Float() - 0.5) * span
		y := -400 + s.Float()*100
		h := 100 + s.Float()*500
		cols = append(cols, Column{
			Position: origin.Add(mgl64.Vec3{x, y, z}),
			Height:   h,
		})
	}
	return cols
}
