package config

// Params returns the template scaling for a preset. Unknown presets fall
// back to medium.
func (d DifficultyConfig) Params(preset DifficultyPreset) DifficultyParams {
	var p DifficultyParams
	switch preset {
	case DifficultyEasy:
		p = d.Easy
	case DifficultyHard:
		p = d.Hard
	default:
		p = d.Medium
	}
	if p.GapMultiplier <= 0 {
		p.GapMultiplier = 1
	}
	if p.SizeMultiplier <= 0 {
		p.SizeMultiplier = 1
	}
	return p
}
