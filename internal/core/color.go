package core

// Color is the foreground colour of a screen cell. Course palettes pick
// from this set; the host turns each value into an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBrown
	ColorSand

	NumColors int = iota
)

// The 16 base colours use their standard ANSI slots. Earth tones for the
// desert, forest and mountain palettes come from the 256-colour cube.
var ansiCodes = [NumColors]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorDarkGray:      "240",
	ColorBrown:         "130",
	ColorSand:          "180",
}

// ANSI returns the 256-colour code of c, or "" for the terminal default
// and for values outside the set.
func (c Color) ANSI() string {
	if int(c) >= NumColors {
		return ""
	}
	return ansiCodes[c]
}
