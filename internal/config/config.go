// Package config provides YAML-based tuning for the parkour simulation and
// the player-facing settings (theme, difficulty, camera, character).
package config

// ParkourConfig contains every tunable constant of the simulation.
type ParkourConfig struct {
	Movement   MovementConfig   `yaml:"movement"`
	Camera     CameraConfig     `yaml:"camera"`
	Course     CourseConfig     `yaml:"course"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MovementConfig defines the player controller constants. Speeds are in
// metres per second, rates are exponential smoothing rates per second.
type MovementConfig struct {
	MaxStep float64 `yaml:"max_step"` // Upper bound on one tick's elapsed time

	FlowMax      float64 `yaml:"flow_max"`     // Sprint momentum
	CruiseSpeed  float64 `yaml:"cruise_speed"` // Momentum while moving without sprint
	SlideBoost   float64 `yaml:"slide_boost"`  // Momentum multiplier of FlowMax while sliding
	Deadzone     float64 `yaml:"deadzone"`
	JoystickRun  float64 `yaml:"joystick_sprint"`
	TurnRate     float64 `yaml:"turn_rate"` // Camera yaw speed in rad/s
	SpawnHeight  float64 `yaml:"spawn_height"`
	FallFloor    float64 `yaml:"fall_floor"` // Below this height the player is recovered
	ProbeMiss    float64 `yaml:"probe_miss"` // Distance reported when the probe hits nothing

	SlideAccelRate    float64 `yaml:"slide_accel_rate"`
	GroundAccelRate   float64 `yaml:"ground_accel_rate"`
	AirAccelRate      float64 `yaml:"air_accel_rate"`
	VelocityBlendRate float64 `yaml:"velocity_blend_rate"`
	GroundFriction    float64 `yaml:"ground_friction"`
	AirFriction       float64 `yaml:"air_friction"`

	Gravity         float64 `yaml:"gravity"`
	RideHeight      float64 `yaml:"ride_height"`
	SlideRideHeight float64 `yaml:"slide_ride_height"`
	GroundTolerance float64 `yaml:"ground_tolerance"` // Slack above ride height still counted as contact

	MaxJumps            int       `yaml:"max_jumps"`
	BaseJumpForce       float64   `yaml:"base_jump_force"`
	JumpMultipliers     []float64 `yaml:"jump_multipliers"`      // Indexed by charges already spent
	SlideJumpMultiplier float64   `yaml:"slide_jump_multiplier"` // Stacks on top of the charge multiplier
	JumpCooldown        float64   `yaml:"jump_cooldown"`
	CoyoteTime          float64   `yaml:"coyote_time"`

	SuperJumpForce    float64 `yaml:"super_jump_force"`
	SuperJumpImpulse  float64 `yaml:"super_jump_impulse"` // Forward push along the movement direction
	SuperJumpCooldown float64 `yaml:"super_jump_cooldown"`
}

// CameraConfig defines camera framing and avatar presentation.
type CameraConfig struct {
	OffsetUp        float64 `yaml:"offset_up"`
	OffsetBack      float64 `yaml:"offset_back"`
	SpeedZoom       float64 `yaml:"speed_zoom"` // Extra offset scale at FlowMax
	FollowRate      float64 `yaml:"follow_rate"`
	LookAtHeight    float64 `yaml:"look_at_height"`
	EyeHeight       float64 `yaml:"eye_height"`
	SlideEyeHeight  float64 `yaml:"slide_eye_height"`
	FOVPerSpeed     float64 `yaml:"fov_per_speed"`
	FOVRate         float64 `yaml:"fov_rate"`
	HeadingRate     float64 `yaml:"heading_rate"`
	SilhouetteRate  float64 `yaml:"silhouette_rate"`
	SlideSilhouette float64 `yaml:"slide_silhouette"`
}

// CourseConfig defines stage layout parameters.
type CourseConfig struct {
	StageSpacing    float64 `yaml:"stage_spacing"` // Z distance between consecutive stage origins
	FinishProximity float64 `yaml:"finish_proximity"`
	BackdropSeed    uint64  `yaml:"backdrop_seed"`
	BackdropCount   int     `yaml:"backdrop_count"`
	BackdropRange   float64 `yaml:"backdrop_range"`
}

// DifficultyConfig holds the tier table.
type DifficultyConfig struct {
	Easy   DifficultyParams `yaml:"easy"`
	Medium DifficultyParams `yaml:"medium"`
	Hard   DifficultyParams `yaml:"hard"`
}

// DifficultyParams scales the course template.
type DifficultyParams struct {
	GapMultiplier  float64 `yaml:"gap_multiplier"`  // Stretches distances between segments
	SizeMultiplier float64 `yaml:"size_multiplier"` // Scales platform and bridge widths
}
