package course

import (
	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
)

// Palette maps course roles to terminal colours.
type Palette struct {
	Platform core.Color
	Accent   core.Color
	Support  core.Color
	Prop     core.Color
	PropAlt  core.Color
	Backdrop core.Color
}

var palettes = map[config.Theme]Palette{
	config.ThemeCity: {
		Platform: core.ColorBrightWhite, Accent: core.ColorBrightCyan, Support: core.ColorGray,
		Prop: core.ColorDarkGray, PropAlt: core.ColorBrightYellow, Backdrop: core.ColorBlue,
	},
	config.ThemeForest: {
		Platform: core.ColorGreen, Accent: core.ColorBrightGreen, Support: core.ColorBrown,
		Prop: core.ColorGreen, PropAlt: core.ColorBrown, Backdrop: core.ColorDarkGray,
	},
	config.ThemeDesert: {
		Platform: core.ColorSand, Accent: core.ColorOrange, Support: core.ColorBrown,
		Prop: core.ColorYellow, PropAlt: core.ColorBrightYellow, Backdrop: core.ColorSand,
	},
	config.ThemeVolcano: {
		Platform: core.ColorDarkGray, Accent: core.ColorBrightRed, Support: core.ColorRed,
		Prop: core.ColorOrange, PropAlt: core.ColorRed, Backdrop: core.ColorRed,
	},
	config.ThemeOcean: {
		Platform: core.ColorBrightCyan, Accent: core.ColorCyan, Support: core.ColorBlue,
		Prop: core.ColorCyan, PropAlt: core.ColorBrightWhite, Backdrop: core.ColorBlue,
	},
	config.ThemeSnow: {
		Platform: core.ColorBrightWhite, Accent: core.ColorBrightBlue, Support: core.ColorGray,
		Prop: core.ColorBrightBlue, PropAlt: core.ColorWhite, Backdrop: core.ColorWhite,
	},
	config.ThemeMountain: {
		Platform: core.ColorWhite, Accent: core.ColorBrightWhite, Support: core.ColorDarkGray,
		Prop: core.ColorDarkGray, PropAlt: core.ColorGray, Backdrop: core.ColorGray,
	},
}

// PaletteFor returns the colours of a theme, falling back to the city set.
func PaletteFor(t config.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[config.ThemeCity]
}
