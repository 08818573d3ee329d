package movement

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
)

// targetCamera returns where the camera wants to be this tick.
func (c *Controller) targetCamera(momentum float64) Camera {
	s := c.state
	cam := Camera{POV: c.pov}
	if c.pov == config.POVFirstPerson {
		eye := c.cam.EyeHeight
		if s.Sliding {
			eye = c.cam.SlideEyeHeight
		}
		cam.Position = s.Position.Add(mgl64.Vec3{0, eye, 0})
		cam.LookAt = cam.Position.Add(Facing(s.Yaw))
		return cam
	}

	offset := yawRotation(s.Yaw).Rotate(mgl64.Vec3{0, c.cam.OffsetUp, c.cam.OffsetBack})
	zoom := 1.0
	if c.move.FlowMax > 0 {
		zoom += momentum / c.move.FlowMax * c.cam.SpeedZoom
	}
	cam.Position = s.Position.Add(offset.Mul(zoom))
	cam.LookAt = s.Position.Add(mgl64.Vec3{0, c.cam.LookAtHeight, 0})
	return cam
}

// updateCamera follows the player. Third person eases towards the target
// and zooms out with speed; first person is pinned to the eye. The field
// of view widens with momentum in both modes.
func (c *Controller) updateCamera(dt float64) {
	s := &c.state
	target := c.targetCamera(s.Momentum)
	if c.pov == config.POVFirstPerson {
		s.Camera.Position = target.Position
		s.Camera.LookAt = target.LookAt
	} else {
		s.Camera.Position = approachVec(s.Camera.Position, target.Position, c.cam.FollowRate, dt)
		s.Camera.LookAt = approachVec(s.Camera.LookAt, target.LookAt, c.cam.FollowRate, dt)
	}
	s.Camera.POV = c.pov
	fov := c.baseFOV + s.Momentum*c.cam.FOVPerSpeed
	s.Camera.FOV = approach(s.Camera.FOV, fov, c.cam.FOVRate, dt)
}
