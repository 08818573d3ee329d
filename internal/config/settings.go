package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTheme is returned when a theme name does not match any theme.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrUnknownPreset is returned when a difficulty name does not match any preset.
	ErrUnknownPreset = errors.New("unknown difficulty preset")
	// ErrUnknownPOV is returned for an unrecognised camera mode.
	ErrUnknownPOV = errors.New("unknown camera pov")
)

// Theme selects the course palette.
type Theme string

const (
	ThemeCity     Theme = "city"
	ThemeForest   Theme = "forest"
	ThemeDesert   Theme = "desert"
	ThemeVolcano  Theme = "volcano"
	ThemeOcean    Theme = "ocean"
	ThemeSnow     Theme = "snow"
	ThemeMountain Theme = "mountain"
)

// Themes lists every theme in menu order.
var Themes = []Theme{ThemeCity, ThemeForest, ThemeDesert, ThemeVolcano, ThemeOcean, ThemeSnow, ThemeMountain}

// ParseTheme resolves a case-insensitive theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Themes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// DifficultyPreset represents a named difficulty tier.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty tiers in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParsePreset resolves a difficulty name. "normal" is accepted as medium.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// CameraPOV selects first or third person framing.
type CameraPOV string

const (
	POVFirstPerson CameraPOV = "first"
	POVThirdPerson CameraPOV = "third"
)

// ParsePOV resolves a camera mode name.
func ParsePOV(s string) (CameraPOV, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "fp", "first-person":
		return POVFirstPerson, nil
	case "third", "tp", "third-person":
		return POVThirdPerson, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPOV, s)
}

// Toggle returns the other camera mode.
func (p CameraPOV) Toggle() CameraPOV {
	if p == POVFirstPerson {
		return POVThirdPerson
	}
	return POVFirstPerson
}

// CharacterStyle selects how the avatar is drawn.
type CharacterStyle string

const (
	CharacterSilhouette CharacterStyle = "silhouette"
	CharacterRealistic  CharacterStyle = "realistic"
)

// Settings are the player's choices, read when a course is built.
type Settings struct {
	Theme      Theme            `yaml:"theme"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	POV        CameraPOV        `yaml:"pov"`
	Character  CharacterStyle   `yaml:"character"`
	FOV        float64          `yaml:"fov"` // Baseline field of view in degrees
}

// DefaultSettings returns the settings a fresh run starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:      ThemeCity,
		Difficulty: DifficultyMedium,
		POV:        POVThirdPerson,
		Character:  CharacterRealistic,
		FOV:        65,
	}
}

// Cycle returns the element after cur in list, wrapping around. dir < 0
// walks backwards.
func Cycle[T comparable](list []T, cur T, dir int) T {
	if len(list) == 0 {
		return cur
	}
	idx := 0
	for i, v := range list {
		if v == cur {
			idx = i
			break
		}
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	return list[(idx+step+len(list))%len(list)]
}
