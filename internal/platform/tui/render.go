package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parkour-run/internal/core"
)

// cellStyles holds one foreground style per screen colour. The default
// colour stays unstyled so blank sky and HUD text carry no escapes.
var cellStyles = func() [core.NumColors]*lipgloss.Style {
	var styles [core.NumColors]*lipgloss.Style
	for i := range styles {
		if code := core.Color(i).ANSI(); code != "" {
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
			styles[i] = &st
		}
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one colour, so a course surface costs one
// escape sequence per row rather than one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	flush := func(c core.Color) {
		if len(run) == 0 {
			return
		}
		if int(c) < len(cellStyles) && cellStyles[c] != nil {
			sb.WriteString(cellStyles[c].Render(string(run)))
		} else {
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush(current)
				current = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush(current)
	}
	return sb.String()
}
