package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/course"
)

// GroundProber casts the downward ground ray. *course.Course satisfies it.
type GroundProber interface {
	ProbeDown(origin mgl64.Vec3, sentinel float64) course.Hit
}

// Telemetry is the per-tick stats tuple handed to the HUD.
type Telemetry struct {
	Speed             float64
	Combo             int
	SuperJumpReady    bool
	SuperJumpCooldown float64
	JumpsRemaining    int
	Grounded          bool
	Sliding           bool
}

// Output is everything a tick produces. Events carry no time; the caller
// stamps them with its run clock.
type Output struct {
	Telemetry Telemetry
	Events    []core.Event
	Hit       course.Hit // Ground probe result, for the finish trigger
	Step      float64    // Elapsed time actually simulated
}

// Controller advances the player state one tick at a time.
type Controller struct {
	move config.MovementConfig
	cam  config.CameraConfig

	state   State
	spawn   mgl64.Vec3
	pov     config.CameraPOV
	baseFOV float64
}

// NewController creates a controller standing at the origin. Call Reset
// with the stage spawn before the first tick.
func NewController(cfg config.ParkourConfig) *Controller {
	c := &Controller{
		move:    cfg.Movement,
		cam:     cfg.Camera,
		pov:     config.POVThirdPerson,
		baseFOV: config.DefaultSettings().FOV,
	}
	c.Reset(mgl64.Vec3{0, cfg.Movement.SpawnHeight, 0})
	return c
}

// SetView selects the camera mode and the baseline field of view.
func (c *Controller) SetView(pov config.CameraPOV, baseFOV float64) {
	c.pov = pov
	if baseFOV > 0 {
		c.baseFOV = baseFOV
	}
	c.state.Camera.POV = pov
}

// Reset starts a stage: the state is overwritten in place at spawn with
// full jump charges, no momentum and a cleared combo. The view yaw is
// kept; it belongs to the player, not the stage.
func (c *Controller) Reset(spawn mgl64.Vec3) {
	yaw := c.state.Yaw
	c.spawn = spawn
	c.state = State{
		Position:       spawn,
		JumpsRemaining: c.move.MaxJumps,
		Yaw:            yaw,
		Heading:        yaw,
		Silhouette:     1,
	}
	c.state.Camera = c.targetCamera(0)
	c.state.Camera.FOV = c.baseFOV
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Spawn returns the current stage spawn point.
func (c *Controller) Spawn() mgl64.Vec3 {
	return c.spawn
}

// Telemetry returns the stats tuple for the current state.
func (c *Controller) Telemetry() Telemetry {
	s := c.state
	return Telemetry{
		Speed:             s.Momentum,
		Combo:             s.Combo,
		SuperJumpReady:    s.SuperJumpCooldown == 0,
		SuperJumpCooldown: s.SuperJumpCooldown,
		JumpsRemaining:    s.JumpsRemaining,
		Grounded:          s.Grounded,
		Sliding:           s.Sliding,
	}
}

// MaxMomentum is the ceiling momentum can reach, while sliding.
func (c *Controller) MaxMomentum() float64 {
	return c.move.FlowMax * c.move.SlideBoost
}

// Tick advances the simulation by dt seconds. dt is clamped to MaxStep so
// a stalled frame or a resume from pause never injects a huge step.
func (c *Controller) Tick(dt float64, in Intent, ground GroundProber) Output {
	m := c.move
	s := &c.state
	var events []core.Event

	dt = math.Max(0, math.Min(dt, m.MaxStep))

	s.JumpCooldown = decay(s.JumpCooldown, dt)
	s.CoyoteTimer = decay(s.CoyoteTimer, dt)
	s.SuperJumpCooldown = decay(s.SuperJumpCooldown, dt)

	s.Yaw = wrapAngle(s.Yaw + in.Turn*m.TurnRate*dt)
	r := in.resolve(m.Deadzone, m.JoystickRun)

	// Slide only from the ground, and only while moving.
	s.Sliding = in.Slide && s.Grounded && r.moving
	if s.Sliding {
		s.Momentum = approach(s.Momentum, m.FlowMax*m.SlideBoost, m.SlideAccelRate, dt)
	} else {
		target := 0.0
		if r.moving {
			target = m.CruiseSpeed
			if r.sprint {
				target = m.FlowMax
			}
		}
		rate := m.AirAccelRate
		if s.Grounded {
			rate = m.GroundAccelRate
		}
		s.Momentum = approach(s.Momentum, target, rate, dt)
	}
	s.Momentum = core.ClampF(s.Momentum, 0, c.MaxMomentum())

	dir := mgl64.Vec3{}
	if r.moving {
		dir = moveDirection(r.forward, r.side, s.Yaw)
	}
	c.blendVelocity(dir, r.moving, dt)

	hit, landed := c.probe(ground, dt)
	if landed {
		events = append(events, core.Event{Kind: core.EventLanded, Value: s.Combo})
	}

	if ev, ok := c.jump(in, dir); ok {
		events = append(events, ev)
	}
	if !s.Grounded {
		s.Sliding = false
	}

	s.Position = s.Position.Add(s.Velocity.Mul(dt))
	s.probeLift = math.Max(0, -s.Velocity.Y()*dt)

	c.orient(dir, r.moving, dt)
	c.updateCamera(dt)

	if s.Position.Y() < m.FallFloor {
		lost := s.Combo
		c.recover()
		events = append(events, core.Event{Kind: core.EventRecovered, Value: lost})
	}

	return Output{
		Telemetry: c.Telemetry(),
		Events:    events,
		Hit:       hit,
		Step:      dt,
	}
}

// blendVelocity steers horizontal velocity towards dir*momentum, or bleeds
// it off with friction when there is no input. Air friction is low so
// momentum carries through jumps.
func (c *Controller) blendVelocity(dir mgl64.Vec3, moving bool, dt float64) {
	m := c.move
	s := &c.state
	var tx, tz, rate float64
	if moving {
		tx, tz = dir.X()*s.Momentum, dir.Z()*s.Momentum
		rate = m.VelocityBlendRate
	} else if s.Grounded {
		rate = m.GroundFriction
	} else {
		rate = m.AirFriction
	}
	s.Velocity[0] = approach(s.Velocity.X(), tx, rate, dt)
	s.Velocity[2] = approach(s.Velocity.Z(), tz, rate, dt)
}

// probe resolves grounding. It reports the hit and whether this tick is
// an airborne to grounded transition.
func (c *Controller) probe(ground GroundProber, dt float64) (course.Hit, bool) {
	m := c.move
	s := &c.state

	hit := course.Miss(m.ProbeMiss)
	if ground != nil {
		origin := s.Position.Add(mgl64.Vec3{0, s.probeLift, 0})
		hit = ground.ProbeDown(origin, m.ProbeMiss)
		if hit.Found() {
			hit.Distance -= s.probeLift
		} else {
			hit.Distance = m.ProbeMiss
		}
	}

	// Contact always reaches the standing ride height; a slide only lowers
	// where the body is held, so starting a slide never lifts off.
	ride := m.RideHeight
	if s.Sliding {
		ride = m.SlideRideHeight
	}
	reach := math.Max(ride, m.RideHeight) + m.GroundTolerance

	// A body still rising from a jump has not touched down, however close
	// the surface below it is.
	rising := !s.Grounded && s.Velocity.Y() > 0

	landed := false
	if hit.Found() && hit.Distance < reach && !rising {
		if !s.Grounded {
			landed = true
			s.JumpsRemaining = m.MaxJumps
			s.CoyoteTimer = m.CoyoteTime
		}
		s.Grounded = true
		s.Velocity[1] = math.Max(0, s.Velocity.Y())
		s.Position[1] += ride - hit.Distance
	} else {
		s.Grounded = false
		s.Velocity[1] -= m.Gravity * dt
	}
	return hit, landed
}

// jump resolves jump input. The super jump has priority and spends no
// charge; a normal jump needs a charge and either ground contact, coyote
// time or an earlier charge spent in this airtime.
func (c *Controller) jump(in Intent, dir mgl64.Vec3) (core.Event, bool) {
	m := c.move
	s := &c.state

	if in.SuperJump && s.SuperJumpCooldown == 0 {
		s.Velocity[1] = m.SuperJumpForce
		s.Velocity = s.Velocity.Add(dir.Mul(m.SuperJumpImpulse))
		s.SuperJumpCooldown = m.SuperJumpCooldown
		s.Grounded = false
		return core.Event{Kind: core.EventSuperJumped, Value: s.Combo}, true
	}

	if !in.Jump || s.JumpCooldown > 0 || s.JumpsRemaining <= 0 {
		return core.Event{}, false
	}
	chained := s.JumpsRemaining < m.MaxJumps
	if !s.Grounded && s.CoyoteTimer <= 0 && !chained {
		return core.Event{}, false
	}

	charge := m.MaxJumps - s.JumpsRemaining
	force := m.BaseJumpForce * m.JumpMultipliers[charge]
	if s.Sliding {
		force *= m.SlideJumpMultiplier
	}
	s.Velocity[1] = force
	s.Grounded = false
	s.CoyoteTimer = 0
	s.JumpsRemaining--
	s.JumpCooldown = m.JumpCooldown
	s.Combo++
	return core.Event{Kind: core.EventJumped, Value: charge + 1}, true
}

// orient turns the avatar towards the movement direction and eases the
// slide crouch in and out.
func (c *Controller) orient(dir mgl64.Vec3, moving bool, dt float64) {
	s := &c.state
	if moving {
		target := math.Atan2(dir.X(), dir.Z())
		s.Heading = approachAngle(s.Heading, target, c.cam.HeadingRate, dt)
	}
	silhouette := 1.0
	if s.Sliding {
		silhouette = c.cam.SlideSilhouette
	}
	s.Silhouette = approach(s.Silhouette, silhouette, c.cam.SilhouetteRate, dt)
}

// recover puts a player who fell off the course back on the spawn. It is
// a normal simulation outcome, not an error.
func (c *Controller) recover() {
	s := &c.state
	s.Position = c.spawn
	s.Velocity = mgl64.Vec3{}
	s.Momentum = 0
	s.Combo = 0
	s.Grounded = false
	s.Sliding = false
	s.probeLift = 0
}
