package movement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/course"
	"github.com/vovakirdan/parkour-run/internal/rng"
)

const frame = 1.0 / 60

// flatGround is an infinite plane at height y with no thickness.
type flatGround struct {
	y float64
}

func (g flatGround) ProbeDown(origin mgl64.Vec3, sentinel float64) course.Hit {
	if origin.Y() < g.y {
		return course.Miss(sentinel)
	}
	return course.Hit{Distance: origin.Y() - g.y, Surface: course.SurfacePlatform, ID: 0}
}

// noGround never reports a surface.
type noGround struct{}

func (noGround) ProbeDown(_ mgl64.Vec3, sentinel float64) course.Hit {
	return course.Miss(sentinel)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func newTestController() (*Controller, config.ParkourConfig) {
	cfg := config.DefaultParkourConfig()
	c := NewController(cfg)
	c.Reset(mgl64.Vec3{0, cfg.Movement.SpawnHeight, 0})
	return c, cfg
}

// standing puts the controller at rest on flat ground at y=0.
func standing(c *Controller, cfg config.ParkourConfig) {
	c.state.Position = mgl64.Vec3{0, cfg.Movement.RideHeight, 0}
	c.state.Velocity = mgl64.Vec3{}
	c.state.Momentum = 0
	c.state.Grounded = true
}

// airborne puts the controller high above flat ground at y=0.
func airborne(c *Controller, jumps int) {
	c.state.Position = mgl64.Vec3{0, 50, 0}
	c.state.Velocity = mgl64.Vec3{}
	c.state.Grounded = false
	c.state.CoyoteTimer = 0
	c.state.JumpCooldown = 0
	c.state.JumpsRemaining = jumps
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestJumpFromRest(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	out := c.Tick(frame, Intent{Jump: true}, flatGround{})
	s := c.State()

	if want := cfg.Movement.BaseJumpForce * 1.0; s.Velocity.Y() != want {
		t.Errorf("vy = %v, want %v", s.Velocity.Y(), want)
	}
	if s.JumpsRemaining != 2 {
		t.Errorf("JumpsRemaining = %d, want 2", s.JumpsRemaining)
	}
	if s.Combo != 1 {
		t.Errorf("Combo = %d, want 1", s.Combo)
	}
	if s.Grounded {
		t.Error("player should be airborne after jumping")
	}
	if !hasEvent(out.Events, core.EventJumped) {
		t.Error("expected a jumped event")
	}
	if hasEvent(out.Events, core.EventLanded) {
		t.Error("standing player must not report a landing")
	}
}

func TestRestingPlayerStaysGrounded(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	for i := 0; i < 120; i++ {
		out := c.Tick(frame, Intent{}, flatGround{})
		if !c.State().Grounded {
			t.Fatalf("lost contact on tick %d", i)
		}
		if hasEvent(out.Events, core.EventLanded) {
			t.Fatalf("spurious landing on tick %d", i)
		}
	}
	if y := c.State().Position.Y(); !near(y, cfg.Movement.RideHeight, 1e-9) {
		t.Errorf("resting height = %v, want %v", y, cfg.Movement.RideHeight)
	}
}

func TestThirdChargeMultiplier(t *testing.T) {
	c, cfg := newTestController()
	airborne(c, 1)

	c.Tick(frame, Intent{Jump: true}, flatGround{})
	s := c.State()

	if s.JumpsRemaining != 0 {
		t.Errorf("JumpsRemaining = %d, want 0", s.JumpsRemaining)
	}
	if want := cfg.Movement.BaseJumpForce * 1.9; !near(s.Velocity.Y(), want, 1e-9) {
		t.Errorf("vy = %v, want %v", s.Velocity.Y(), want)
	}
}

func TestChainedJumpHeights(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	var got []float64
	for i := 0; i < 3; i++ {
		c.Tick(frame, Intent{Jump: true}, flatGround{})
		got = append(got, c.State().Velocity.Y())
		// Let the input cooldown run out while airborne.
		for j := 0; j < 12; j++ {
			c.Tick(frame, Intent{}, flatGround{})
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("jump %d force %v not above jump %d force %v", i+1, got[i], i, got[i-1])
		}
	}
	if c.State().JumpsRemaining != 0 || c.State().Combo != 3 {
		t.Errorf("after chain: jumps %d combo %d", c.State().JumpsRemaining, c.State().Combo)
	}
}

func TestJumpWithoutChargesIgnored(t *testing.T) {
	a, _ := newTestController()
	b, _ := newTestController()
	airborne(a, 0)
	airborne(b, 0)

	a.Tick(frame, Intent{Jump: true}, flatGround{})
	b.Tick(frame, Intent{}, flatGround{})

	if a.State().Velocity.Y() != b.State().Velocity.Y() {
		t.Errorf("jump with no charges changed vy: %v vs %v", a.State().Velocity.Y(), b.State().Velocity.Y())
	}
	if a.State().Combo != 0 {
		t.Errorf("Combo = %d, want 0", a.State().Combo)
	}
}

func TestFirstJumpNeedsGroundOrCoyote(t *testing.T) {
	c, cfg := newTestController()
	airborne(c, cfg.Movement.MaxJumps)

	c.Tick(frame, Intent{Jump: true}, flatGround{})
	if c.State().JumpsRemaining != cfg.Movement.MaxJumps {
		t.Error("full charges with no coyote time must not allow an air jump")
	}

	airborne(c, cfg.Movement.MaxJumps)
	c.state.CoyoteTimer = 0.2
	c.Tick(frame, Intent{Jump: true}, flatGround{})
	s := c.State()
	if s.JumpsRemaining != cfg.Movement.MaxJumps-1 {
		t.Errorf("coyote jump: JumpsRemaining = %d", s.JumpsRemaining)
	}
	if s.CoyoteTimer != 0 {
		t.Errorf("coyote timer should be spent, got %v", s.CoyoteTimer)
	}
	if s.Velocity.Y() != cfg.Movement.BaseJumpForce {
		t.Errorf("coyote jump vy = %v, want %v", s.Velocity.Y(), cfg.Movement.BaseJumpForce)
	}
}

func TestJumpCooldownSuppressesRepeat(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	c.Tick(frame, Intent{Jump: true}, flatGround{})
	c.Tick(frame, Intent{Jump: true}, flatGround{})

	if got := c.State().JumpsRemaining; got != 2 {
		t.Errorf("JumpsRemaining = %d, want 2 (second press within cooldown)", got)
	}
	if got := c.State().Combo; got != 1 {
		t.Errorf("Combo = %d, want 1", got)
	}
}

func TestSuperJumpPriority(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	out := c.Tick(frame, Intent{Jump: true, SuperJump: true}, flatGround{})
	s := c.State()

	if s.Velocity.Y() != cfg.Movement.SuperJumpForce {
		t.Errorf("vy = %v, want %v", s.Velocity.Y(), cfg.Movement.SuperJumpForce)
	}
	if s.JumpsRemaining != cfg.Movement.MaxJumps {
		t.Errorf("super jump consumed a charge: %d", s.JumpsRemaining)
	}
	if s.Combo != 0 {
		t.Errorf("super jump changed combo: %d", s.Combo)
	}
	if s.SuperJumpCooldown != cfg.Movement.SuperJumpCooldown {
		t.Errorf("SuperJumpCooldown = %v", s.SuperJumpCooldown)
	}
	if !hasEvent(out.Events, core.EventSuperJumped) || hasEvent(out.Events, core.EventJumped) {
		t.Errorf("events = %v", out.Events)
	}
	if out.Telemetry.SuperJumpReady {
		t.Error("telemetry should report super jump not ready")
	}
}

func TestSuperJumpOnCooldownIsNoop(t *testing.T) {
	c, cfg := newTestController()
	airborne(c, 2)
	c.state.SuperJumpCooldown = 3

	c.Tick(frame, Intent{SuperJump: true}, flatGround{})
	s := c.State()

	if !near(s.SuperJumpCooldown, 3-frame, 1e-12) {
		t.Errorf("cooldown = %v, want %v", s.SuperJumpCooldown, 3-frame)
	}
	if want := -cfg.Movement.Gravity * frame; !near(s.Velocity.Y(), want, 1e-12) {
		t.Errorf("vy = %v, want gravity only %v", s.Velocity.Y(), want)
	}
}

func TestSuperJumpImpulse(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	c.Tick(frame, Intent{Forward: 1, SuperJump: true}, flatGround{})
	s := c.State()
	// Facing -Z at yaw 0: the impulse pushes along -Z.
	if s.Velocity.Z() > -cfg.Movement.SuperJumpImpulse+1 {
		t.Errorf("vz = %v, expected forward impulse of about %v", s.Velocity.Z(), cfg.Movement.SuperJumpImpulse)
	}
}

func TestLandingResetsCharges(t *testing.T) {
	c, cfg := newTestController()
	airborne(c, 0)
	c.state.Combo = 5
	c.state.Position = mgl64.Vec3{0, 1.0, 0}
	c.state.Velocity = mgl64.Vec3{0, -10, 0}

	out := c.Tick(frame, Intent{}, flatGround{})
	s := c.State()

	if !s.Grounded {
		t.Fatal("expected landing")
	}
	if s.JumpsRemaining != cfg.Movement.MaxJumps {
		t.Errorf("JumpsRemaining = %d, want %d", s.JumpsRemaining, cfg.Movement.MaxJumps)
	}
	if s.CoyoteTimer != cfg.Movement.CoyoteTime {
		t.Errorf("CoyoteTimer = %v, want %v", s.CoyoteTimer, cfg.Movement.CoyoteTime)
	}
	if s.Combo != 5 {
		t.Errorf("landing changed combo: %d", s.Combo)
	}
	if s.Velocity.Y() != 0 {
		t.Errorf("vy = %v, want 0 after landing", s.Velocity.Y())
	}
	if !near(s.Position.Y(), cfg.Movement.RideHeight, 1e-9) {
		t.Errorf("y = %v, want ride height %v", s.Position.Y(), cfg.Movement.RideHeight)
	}
	if !hasEvent(out.Events, core.EventLanded) {
		t.Error("expected a landed event")
	}
}

func TestFastFallDoesNotTunnel(t *testing.T) {
	c, _ := newTestController()
	airborne(c, 3)
	c.state.Position = mgl64.Vec3{0, 2, 0}
	c.state.Velocity = mgl64.Vec3{0, -120, 0}

	// The first tick carries the player below the plane.
	c.Tick(0.05, Intent{}, flatGround{})
	if c.State().Position.Y() >= 0 {
		t.Fatalf("setup: expected to pass below the plane, y=%v", c.State().Position.Y())
	}
	c.Tick(0.05, Intent{}, flatGround{})
	if !c.State().Grounded {
		t.Error("swept probe should catch the plane after a fast fall")
	}
}

func TestFallRecovery(t *testing.T) {
	c, _ := newTestController()
	spawn := mgl64.Vec3{0, 18, -2600}
	c.Reset(spawn)
	c.state.Position = mgl64.Vec3{12, -40, -2700}
	c.state.Velocity = mgl64.Vec3{5, -20, 3}
	c.state.Momentum = 30
	c.state.Combo = 4

	out := c.Tick(frame, Intent{}, noGround{})
	s := c.State()

	if s.Position != spawn {
		t.Errorf("Position = %v, want %v", s.Position, spawn)
	}
	if s.Velocity != (mgl64.Vec3{}) {
		t.Errorf("Velocity = %v, want zero", s.Velocity)
	}
	if s.Momentum != 0 || s.Combo != 0 {
		t.Errorf("Momentum %v Combo %d, want zeros", s.Momentum, s.Combo)
	}
	if !hasEvent(out.Events, core.EventRecovered) {
		t.Error("expected a recovered event")
	}
}

func TestElapsedClamp(t *testing.T) {
	c, cfg := newTestController()
	c.state.JumpCooldown = 1

	out := c.Tick(5, Intent{}, noGround{})
	if out.Step != cfg.Movement.MaxStep {
		t.Errorf("Step = %v, want %v", out.Step, cfg.Movement.MaxStep)
	}
	if !near(c.State().JumpCooldown, 1-cfg.Movement.MaxStep, 1e-12) {
		t.Errorf("JumpCooldown = %v", c.State().JumpCooldown)
	}

	out = c.Tick(-1, Intent{}, noGround{})
	if out.Step != 0 {
		t.Errorf("negative elapsed should simulate nothing, got %v", out.Step)
	}
}

func TestMomentumTargets(t *testing.T) {
	tests := []struct {
		name string
		in   Intent
		want float64
	}{
		{"idle", Intent{}, 0},
		{"cruise", Intent{Forward: 1}, 30},
		{"sprint", Intent{Forward: 1, Sprint: true}, 62},
		{"joystick full tilt sprints", Intent{Joystick: &core.Joystick{X: 0, Y: -1}}, 62},
		{"joystick half tilt cruises", Intent{Joystick: &core.Joystick{X: 0, Y: -0.5}}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, cfg := newTestController()
			standing(c, cfg)
			for i := 0; i < 600; i++ {
				c.Tick(frame, tt.in, flatGround{})
			}
			if got := c.State().Momentum; !near(got, tt.want, 0.01) {
				t.Errorf("momentum = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAirMomentumPersists(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)
	for i := 0; i < 300; i++ {
		c.Tick(frame, Intent{Forward: 1, Sprint: true}, flatGround{})
	}
	before := c.State().HorizontalSpeed()

	// Release input in the air: low air friction keeps most of the speed.
	airborne(c, 3)
	c.state.Velocity = mgl64.Vec3{0, 0, -before}
	for i := 0; i < 30; i++ {
		c.Tick(frame, Intent{}, flatGround{})
	}
	if after := c.State().HorizontalSpeed(); after < before*0.3 {
		t.Errorf("air speed fell from %v to %v", before, after)
	}

	// On the ground the same half second stops the player.
	standing(c, cfg)
	c.state.Velocity = mgl64.Vec3{0, 0, -before}
	for i := 0; i < 30; i++ {
		c.Tick(frame, Intent{}, flatGround{})
	}
	if after := c.State().HorizontalSpeed(); after > 1 {
		t.Errorf("ground friction left %v m/s", after)
	}
}

func TestSlide(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	in := Intent{Forward: 1, Sprint: true, Slide: true}
	for i := 0; i < 90; i++ {
		c.Tick(frame, in, flatGround{})
		if !c.State().Sliding {
			t.Fatalf("slide dropped on tick %d", i)
		}
		if !c.State().Grounded {
			t.Fatalf("slide lost ground contact on tick %d", i)
		}
	}
	s := c.State()
	if s.Momentum <= cfg.Movement.FlowMax || s.Momentum > c.MaxMomentum() {
		t.Errorf("slide momentum = %v, want in (%v, %v]", s.Momentum, cfg.Movement.FlowMax, c.MaxMomentum())
	}
	if !near(s.Position.Y(), cfg.Movement.SlideRideHeight, 1e-9) {
		t.Errorf("slide height = %v, want %v", s.Position.Y(), cfg.Movement.SlideRideHeight)
	}
	if s.Silhouette > 0.5 {
		t.Errorf("silhouette = %v, expected compressed", s.Silhouette)
	}

	// Standing back up returns to ride height.
	c.Tick(frame, Intent{Forward: 1}, flatGround{})
	if !near(c.State().Position.Y(), cfg.Movement.RideHeight, 1e-9) || !c.State().Grounded {
		t.Errorf("after slide: y=%v grounded=%v", c.State().Position.Y(), c.State().Grounded)
	}
}

func TestSlideNeedsGroundAndMovement(t *testing.T) {
	c, cfg := newTestController()
	airborne(c, 3)
	c.Tick(frame, Intent{Forward: 1, Slide: true}, flatGround{})
	if c.State().Sliding {
		t.Error("cannot slide in the air")
	}

	standing(c, cfg)
	c.Tick(frame, Intent{Slide: true}, flatGround{})
	if c.State().Sliding {
		t.Error("cannot slide without moving")
	}
}

func TestSlideJumpBoost(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)
	in := Intent{Forward: 1, Slide: true}
	for i := 0; i < 10; i++ {
		c.Tick(frame, in, flatGround{})
	}
	in.Jump = true
	c.Tick(frame, in, flatGround{})
	want := cfg.Movement.BaseJumpForce * cfg.Movement.SlideJumpMultiplier
	if !near(c.State().Velocity.Y(), want, 1e-9) {
		t.Errorf("slide jump vy = %v, want %v", c.State().Velocity.Y(), want)
	}
}

func TestSlideJumpStacksOnChargeMultiplier(t *testing.T) {
	cfg := config.DefaultParkourConfig()
	cfg.Movement.JumpMultipliers = []float64{1.2, 1.35, 1.9}
	c := NewController(cfg)
	standing(c, cfg)

	in := Intent{Forward: 1, Slide: true}
	for i := 0; i < 10; i++ {
		c.Tick(frame, in, flatGround{})
	}
	in.Jump = true
	c.Tick(frame, in, flatGround{})

	want := cfg.Movement.BaseJumpForce * 1.2 * cfg.Movement.SlideJumpMultiplier
	if !near(c.State().Velocity.Y(), want, 1e-9) {
		t.Errorf("slide jump vy = %v, want %v", c.State().Velocity.Y(), want)
	}
}

func TestJumpLeavesGroundAtAnyTickRate(t *testing.T) {
	rates := []int{30, 60, 240, 500, 1000}
	for _, slide := range []bool{false, true} {
		for _, hz := range rates {
			c, cfg := newTestController()
			standing(c, cfg)
			dt := 1 / float64(hz)

			in := Intent{Forward: 1, Slide: slide}
			for i := 0; i < hz/6; i++ {
				c.Tick(dt, in, flatGround{})
			}
			if c.State().Sliding != slide {
				t.Fatalf("%d Hz slide=%v: sliding = %v before the jump", hz, slide, c.State().Sliding)
			}

			in.Jump = true
			c.Tick(dt, in, flatGround{})
			in.Jump = false

			// A tenth of a second later the body must still be on its way up.
			for i := 0; i < hz/10; i++ {
				out := c.Tick(dt, in, flatGround{})
				if hasEvent(out.Events, core.EventLanded) {
					t.Fatalf("%d Hz slide=%v: landed %d ticks after the jump", hz, slide, i+1)
				}
			}
			s := c.State()
			if s.Grounded {
				t.Errorf("%d Hz slide=%v: still grounded after jumping", hz, slide)
			}
			if s.JumpsRemaining != cfg.Movement.MaxJumps-1 {
				t.Errorf("%d Hz slide=%v: jumps remaining = %d, want %d", hz, slide, s.JumpsRemaining, cfg.Movement.MaxJumps-1)
			}
			if s.Position.Y() <= cfg.Movement.RideHeight+1 {
				t.Errorf("%d Hz slide=%v: y = %v, jump did not clear the ground", hz, slide, s.Position.Y())
			}
		}
	}
}

func TestSlideJumpKeepsSpentCharge(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)
	in := Intent{Forward: 1, Slide: true}
	for i := 0; i < 10; i++ {
		c.Tick(frame, in, flatGround{})
	}
	in.Jump = true
	c.Tick(frame, in, flatGround{})

	out := c.Tick(frame, Intent{Forward: 1, Slide: true}, flatGround{})
	s := c.State()
	if hasEvent(out.Events, core.EventLanded) || s.Grounded {
		t.Fatal("the tick after a slide jump must not count as a landing")
	}
	if s.JumpsRemaining != cfg.Movement.MaxJumps-1 {
		t.Errorf("jumps remaining = %d, want %d", s.JumpsRemaining, cfg.Movement.MaxJumps-1)
	}
	if s.CoyoteTimer != 0 {
		t.Errorf("coyote timer re-armed: %v", s.CoyoteTimer)
	}
}

func TestTurnAndDirection(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)

	// A quarter turn left at TurnRate rad/s.
	secs := (math.Pi / 2) / cfg.Movement.TurnRate
	steps := int(math.Round(secs / frame))
	for i := 0; i < steps; i++ {
		c.Tick(secs/float64(steps), Intent{Turn: 1}, flatGround{})
	}
	if !near(c.State().Yaw, math.Pi/2, 1e-9) {
		t.Fatalf("yaw = %v, want pi/2", c.State().Yaw)
	}

	for i := 0; i < 120; i++ {
		c.Tick(frame, Intent{Forward: 1}, flatGround{})
	}
	v := c.State().Velocity
	if v.X() > -25 || math.Abs(v.Z()) > 1 {
		t.Errorf("after turning left, forward should run along -X; v=%v", v)
	}
}

func TestTelemetryMatchesState(t *testing.T) {
	c, cfg := newTestController()
	standing(c, cfg)
	out := c.Tick(frame, Intent{Forward: 1, Jump: true}, flatGround{})
	s := c.State()

	tel := out.Telemetry
	if tel.Speed != s.Momentum || tel.Combo != s.Combo || tel.JumpsRemaining != s.JumpsRemaining {
		t.Errorf("telemetry %+v does not match state", tel)
	}
	if !tel.SuperJumpReady || tel.SuperJumpCooldown != 0 {
		t.Errorf("fresh controller should have the super jump ready: %+v", tel)
	}
}

func TestInvariantsOnCourse(t *testing.T) {
	cfg := config.DefaultParkourConfig()
	for _, preset := range config.Presets {
		t.Run(string(preset), func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Difficulty = preset
			crs := course.Build(course.NewParams(cfg, settings, 1))

			c := NewController(cfg)
			c.Reset(crs.Spawn)
			stream := rng.New(uint64(len(preset)))
			maxM := c.MaxMomentum()

			for i := 0; i < 3000; i++ {
				in := Intent{
					Forward:   float64(stream.Intn(3) - 1),
					Side:      float64(stream.Intn(3) - 1),
					Turn:      float64(stream.Intn(3) - 1),
					Sprint:    stream.Float() < 0.6,
					Slide:     stream.Float() < 0.2,
					Jump:      stream.Float() < 0.1,
					SuperJump: stream.Float() < 0.01,
				}
				if stream.Float() < 0.1 {
					in.Joystick = &core.Joystick{X: stream.Centered(1), Y: stream.Centered(1)}
				}
				dt := stream.Range(0, 0.15)

				c.Tick(dt, in, crs)
				s := c.State()
				if s.Momentum < 0 || s.Momentum > maxM {
					t.Fatalf("tick %d: momentum %v outside [0, %v]", i, s.Momentum, maxM)
				}
				if s.JumpsRemaining < 0 || s.JumpsRemaining > cfg.Movement.MaxJumps {
					t.Fatalf("tick %d: jumps remaining %d", i, s.JumpsRemaining)
				}
				if s.JumpCooldown < 0 || s.CoyoteTimer < 0 || s.SuperJumpCooldown < 0 {
					t.Fatalf("tick %d: negative timer %+v", i, s)
				}
				if s.Sliding && !s.Grounded {
					t.Fatalf("tick %d: sliding while airborne", i)
				}
				if s.Position.Y() < cfg.Movement.FallFloor {
					t.Fatalf("tick %d: left below the fall floor at %v", i, s.Position)
				}
			}
		})
	}
}

func TestJumpsOnlyIncreaseOnLanding(t *testing.T) {
	cfg := config.DefaultParkourConfig()
	crs := course.Build(course.NewParams(cfg, config.DefaultSettings(), 1))
	c := NewController(cfg)
	c.Reset(crs.Spawn)
	stream := rng.New(7)

	prev := c.State().JumpsRemaining
	for i := 0; i < 2000; i++ {
		in := Intent{Forward: 1, Sprint: true, Jump: stream.Float() < 0.2}
		out := c.Tick(frame, in, crs)
		cur := c.State().JumpsRemaining
		if cur > prev && !hasEvent(out.Events, core.EventLanded) {
			t.Fatalf("tick %d: jumps went %d -> %d without a landing", i, prev, cur)
		}
		prev = cur
	}
}
