package config

import (
	_ "embed"
)

//go:embed defaults/parkour.yaml
var defaultParkourYAML []byte

// DefaultParkourConfig returns the built-in tuning. The embedded YAML carries
// the same values; this copy is the fallback if the embed cannot be parsed.
func DefaultParkourConfig() ParkourConfig {
	return ParkourConfig{
		Movement: MovementConfig{
			MaxStep:     0.1,
			FlowMax:     62.0,
			CruiseSpeed: 30.0,
			SlideBoost:  1.15,
			Deadzone:    0.1,
			JoystickRun: 0.8,
			TurnRate:    2.5,
			SpawnHeight: 18.0,
			FallFloor:   -30.0,
			ProbeMiss:   1000.0,

			SlideAccelRate:    3.0,
			GroundAccelRate:   10.0,
			AirAccelRate:      3.0,
			VelocityBlendRate: 12.0,
			GroundFriction:    22.0,
			AirFriction:       2.0,

			Gravity:         48.0,
			RideHeight:      1.45,
			SlideRideHeight: 0.8,
			GroundTolerance: 0.05,

			MaxJumps:            3,
			BaseJumpForce:       19.0,
			JumpMultipliers:     []float64{1.0, 1.35, 1.9},
			SlideJumpMultiplier: 1.4,
			JumpCooldown:        0.18,
			CoyoteTime:          0.35,

			SuperJumpForce:    52.0,
			SuperJumpImpulse:  40.0,
			SuperJumpCooldown: 7.0,
		},
		Camera: CameraConfig{
			OffsetUp:        1.8,
			OffsetBack:      4.5,
			SpeedZoom:       0.3,
			FollowRate:      15.0,
			LookAtHeight:    1.2,
			EyeHeight:       2.0,
			SlideEyeHeight:  0.4,
			FOVPerSpeed:     0.8,
			FOVRate:         10.0,
			HeadingRate:     18.0,
			SilhouetteRate:  12.0,
			SlideSilhouette: 0.45,
		},
		Course: CourseConfig{
			StageSpacing:    2600.0,
			FinishProximity: 3.0,
			BackdropSeed:    42,
			BackdropCount:   400,
			BackdropRange:   3500.0,
		},
		Difficulty: DifficultyConfig{
			Easy:   DifficultyParams{GapMultiplier: 0.85, SizeMultiplier: 1.2},
			Medium: DifficultyParams{GapMultiplier: 1.15, SizeMultiplier: 1.0},
			Hard:   DifficultyParams{GapMultiplier: 1.6, SizeMultiplier: 0.75},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultParkourYAML
}
