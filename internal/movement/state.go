// Package movement implements the player controller: momentum, velocity
// blending, ground probing, chained jumps, sliding and camera framing.
package movement

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
)

// State is the player's kinematic state. Only the controller mutates it.
type State struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Momentum float64 // Smoothed forward speed, not |Velocity|
	Grounded bool
	Sliding  bool

	JumpsRemaining    int
	JumpCooldown      float64
	CoyoteTimer       float64
	SuperJumpCooldown float64
	Combo             int

	Yaw        float64 // View heading about +Y; 0 faces -Z
	Heading    float64 // Avatar body yaw
	Silhouette float64 // Vertical avatar scale, 1 standing
	Camera     Camera

	// Downward displacement of the last tick. The next probe starts this
	// much higher so a fast fall cannot step through a thin deck.
	probeLift float64
}

// Camera is the framing derived from the player each tick.
type Camera struct {
	POV      config.CameraPOV
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FOV      float64
}

// Airborne reports the negation of Grounded, for readability at call sites.
func (s State) Airborne() bool {
	return !s.Grounded
}

// HorizontalSpeed returns |Velocity| in the XZ plane.
func (s State) HorizontalSpeed() float64 {
	return mgl64.Vec2{s.Velocity.X(), s.Velocity.Z()}.Len()
}
