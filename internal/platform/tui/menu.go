package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/registry"
)

// Menu rows
const (
	rowMode = iota
	rowTheme
	rowDifficulty
	rowCamera
	rowCharacter
	rowStart
	rowInspect
	rowQuit
	rowCount
)

var characters = []config.CharacterStyle{config.CharacterRealistic, config.CharacterSilhouette}

var povs = []config.CameraPOV{config.POVThirdPerson, config.POVFirstPerson}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu: pick a mode and
// the course settings, then start, inspect or quit.
type MenuModel struct {
	modes    []registry.GameInfo
	mode     int
	settings config.Settings
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	started  bool
	inspect  bool
}

// NewMenuModel creates a new menu model. The current settings come from cfg.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	settings := cfg.Settings
	if settings == (config.Settings{}) {
		settings = config.DefaultSettings()
	}
	return MenuModel{
		modes:    registry.List(),
		settings: settings,
		cursor:   rowStart,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + rowCount) % rowCount

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rowCount

	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)

	case key.Matches(msg, m.keys.Right):
		m.cycle(1)

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case rowStart:
			if len(m.modes) > 0 {
				m.started = true
				return m, tea.Quit
			}
		case rowInspect:
			m.inspect = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.cycle(1)
		}
	}

	return m, nil
}

// cycle steps the setting under the cursor.
func (m *MenuModel) cycle(dir int) {
	s := &m.settings
	switch m.cursor {
	case rowMode:
		if n := len(m.modes); n > 0 {
			m.mode = (m.mode + dir + n) % n
		}
	case rowTheme:
		s.Theme = config.Cycle(config.Themes, s.Theme, dir)
	case rowDifficulty:
		s.Difficulty = config.Cycle(config.Presets, s.Difficulty, dir)
	case rowCamera:
		s.POV = config.Cycle(povs, s.POV, dir)
	case rowCharacter:
		s.Character = config.Cycle(characters, s.Character, dir)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P A R K O U R"), m.width))
	b.WriteString("\n\n")

	modeTitle := "-"
	if len(m.modes) > 0 {
		modeTitle = m.modes[m.mode].Title
	}
	rows := []struct{ label, value string }{
		{"Mode", modeTitle},
		{"Theme", string(m.settings.Theme)},
		{"Difficulty", string(m.settings.Difficulty)},
		{"Camera", povLabel(m.settings.POV)},
		{"Character", string(m.settings.Character)},
		{"Start", ""},
		{"Inspect course", ""},
		{"Quit", ""},
	}

	for i, r := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + r.label
		if r.value != "" {
			line = fmt.Sprintf("%s%-12s < %s >", cursor, r.label, r.value)
		}
		if i == m.cursor {
			line = menuCursorStyle.Render(line)
		} else if r.value != "" {
			line = menuLabelStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if i == rowCharacter {
			b.WriteString("\n")
		}
	}

	if len(m.modes) > 0 {
		if desc := m.modes[m.mode].Description; desc != "" {
			b.WriteString("\n")
			b.WriteString(centerText(menuLabelStyle.Render(desc), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func povLabel(p config.CameraPOV) string {
	if p == config.POVFirstPerson {
		return "first person"
	}
	return "third person"
}

// Config returns the runtime config with the chosen settings applied.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	cfg.Settings = m.settings
	return cfg
}

// GameID returns the selected mode's game ID.
func (m MenuModel) GameID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// Started returns true once the user chose Start.
func (m MenuModel) Started() bool {
	return m.started
}

// WantsInspector returns true if user chose to inspect the course.
func (m MenuModel) WantsInspector() bool {
	return m.inspect
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID  string
	Config  core.RuntimeConfig
	Inspect bool
	Quit    bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), GameID: m.GameID()}
	switch {
	case m.WantsInspector():
		result.Inspect = true
	case m.Started():
	default:
		result.Quit = true
	}
	return result, nil
}
