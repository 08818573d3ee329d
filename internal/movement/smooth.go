package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// blend returns the fraction of the remaining distance covered in dt at
// the given rate. It is frame-rate independent and always in [0,1), so a
// smoothed value never overshoots its target.
func blend(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

func approach(cur, target, rate, dt float64) float64 {
	return cur + (target-cur)*blend(rate, dt)
}

func approachVec(cur, target mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	return cur.Add(target.Sub(cur).Mul(blend(rate, dt)))
}

// approachAngle turns cur towards target along the shorter arc.
func approachAngle(cur, target, rate, dt float64) float64 {
	return wrapAngle(cur + wrapAngle(target-cur)*blend(rate, dt))
}

// wrapAngle maps a into (-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

func decay(v, dt float64) float64 {
	return math.Max(0, v-dt)
}

// yawRotation returns the rotation about +Y by yaw radians.
func yawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
}

// moveDirection turns a forward/side request into a unit world direction
// relative to the view yaw. Zero input yields the zero vector.
func moveDirection(forward, side, yaw float64) mgl64.Vec3 {
	local := mgl64.Vec3{side, 0, -forward}
	if local.Len() == 0 {
		return mgl64.Vec3{}
	}
	return yawRotation(yaw).Rotate(local.Normalize())
}

// Facing returns the unit view direction in the XZ plane for a yaw.
func Facing(yaw float64) mgl64.Vec3 {
	return moveDirection(1, 0, yaw)
}
