package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid parkour config")

// LoadParkour loads the simulation tuning.
// Search order: customPath -> ~/.parkour/configs/parkour.yaml -> ./configs/parkour.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadParkour(customPath string) (ParkourConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ParkourConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseParkour(data)
		if err != nil {
			return ParkourConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "parkour.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseParkour(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/parkour.yaml"); err == nil {
		if cfg, err := ParseParkour(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseParkour(defaultParkourYAML)
	if err != nil {
		return DefaultParkourConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseParkour decodes YAML over the built-in defaults and validates the result.
func ParseParkour(data []byte) (ParkourConfig, error) {
	cfg := DefaultParkourConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ParkourConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ParkourConfig{}, err
	}
	return cfg, nil
}

// Validate rejects tunings the controller cannot run with.
func (c ParkourConfig) Validate() error {
	m := c.Movement
	switch {
	case m.MaxStep <= 0:
		return fmt.Errorf("%w: movement.max_step must be positive", ErrInvalidConfig)
	case m.FlowMax <= 0:
		return fmt.Errorf("%w: movement.flow_max must be positive", ErrInvalidConfig)
	case m.MaxJumps < 1:
		return fmt.Errorf("%w: movement.max_jumps must be at least 1", ErrInvalidConfig)
	case len(m.JumpMultipliers) < m.MaxJumps:
		return fmt.Errorf("%w: movement.jump_multipliers needs %d entries, has %d",
			ErrInvalidConfig, m.MaxJumps, len(m.JumpMultipliers))
	case m.SlideRideHeight > m.RideHeight:
		return fmt.Errorf("%w: movement.slide_ride_height must not exceed ride_height", ErrInvalidConfig)
	case m.GroundTolerance < 0:
		return fmt.Errorf("%w: movement.ground_tolerance must not be negative", ErrInvalidConfig)
	case c.Course.StageSpacing <= 0:
		return fmt.Errorf("%w: course.stage_spacing must be positive", ErrInvalidConfig)
	}
	return nil
}

// UserPath returns a path under ~/.parkour, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".parkour"}, elem...)...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
