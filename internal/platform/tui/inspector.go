package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/course"
)

// InspectorKeyMap defines the key bindings for the course inspector.
type InspectorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevStage  key.Binding
	NextStage  key.Binding
	Theme      key.Binding
	Difficulty key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k InspectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevStage, k.NextStage, k.Theme, k.Difficulty, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k InspectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevStage, k.NextStage},
		{k.Theme, k.Difficulty, k.Back, k.Quit},
	}
}

// DefaultInspectorKeyMap returns default key bindings.
func DefaultInspectorKeyMap() InspectorKeyMap {
	return InspectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevStage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev stage"),
		),
		NextStage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next stage"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t", "tab"),
			key.WithHelp("t", "theme"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InspectorModel lists the surfaces of a generated stage.
type InspectorModel struct {
	cfg       config.ParkourConfig
	settings  config.Settings
	stage     int
	summary   course.Summary
	table     table.Model
	help      help.Model
	keys      InspectorKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewInspectorModel creates an inspector for stage 1 under the given settings.
func NewInspectorModel(cfg config.ParkourConfig, settings config.Settings, width, height int) InspectorModel {
	h := help.New()
	h.ShowAll = false

	m := InspectorModel{
		cfg:      cfg,
		settings: settings,
		stage:    1,
		keys:     DefaultInspectorKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.rebuild()
	return m
}

// createTable creates a new table sized to the window.
func (m *InspectorModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Surface", Width: 16},
		{Title: "Center / Start", Width: 24},
		{Title: "Size / End", Width: 24},
		{Title: "Top", Width: 8},
		{Title: "Props", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// tableHeight leaves room for the title, info line and help, keeping
// at least a few rows.
func tableHeight(screenH int) int {
	return max(screenH-10, 5)
}

// rebuild generates the current stage and refreshes the rows.
func (m *InspectorModel) rebuild() {
	c := course.Build(course.NewParams(m.cfg, m.settings, m.stage))
	m.summary = course.Summarize(c)

	rows := make([]table.Row, 0, len(m.summary.Platforms)+len(m.summary.Bridges))
	for _, p := range m.summary.Platforms {
		name := p.Name
		if p.Finish {
			name += " *"
		}
		rows = append(rows, table.Row{
			name,
			fmtVec(p.Center),
			fmtVec(p.Size),
			fmt.Sprintf("%.1f", p.Center[1]+p.Size[1]/2),
			fmt.Sprintf("%d", p.Decorations),
		})
	}
	for i, b := range m.summary.Bridges {
		rows = append(rows, table.Row{
			fmt.Sprintf("bridge %d", i+1),
			fmtVec(b.Start),
			fmtVec(b.End),
			fmt.Sprintf("%.1f", b.End[1]),
			"-",
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func fmtVec(v [3]float64) string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", v[0], v[1], v[2])
}

// Init initializes the inspector model.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextStage):
			m.stage++
			m.rebuild()
			return m, nil

		case key.Matches(msg, m.keys.PrevStage):
			if m.stage > 1 {
				m.stage--
				m.rebuild()
			}
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			m.settings.Theme = config.Cycle(config.Themes, m.settings.Theme, 1)
			m.rebuild()
			return m, nil

		case key.Matches(msg, m.keys.Difficulty):
			m.settings.Difficulty = config.Cycle(config.Presets, m.settings.Difficulty, 1)
			m.rebuild()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.rebuild()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the inspector.
func (m InspectorModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("COURSE - stage %d / %s / %s", m.stage, m.summary.Theme, m.summary.Difficulty)
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	info := fmt.Sprintf("spawn %s   finish depth %.0f m   %d props   %d structures",
		fmtVec(m.summary.Spawn), m.summary.Anchors["finish"], totalProps(m.summary), m.summary.Structures)
	b.WriteString(centerText(infoStyle.Render(info), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func totalProps(s course.Summary) int {
	n := 0
	for _, c := range s.Decorations {
		n += c
	}
	return n
}

// IsGoingBack returns true if user wants to go back to menu.
func (m InspectorModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m InspectorModel) IsQuitting() bool {
	return m.quitting
}

// RunInspector runs the course inspector.
// Returns true if user wants to go back to menu, false if quitting.
func RunInspector(cfg config.ParkourConfig, settings config.Settings, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewInspectorModel(cfg, settings, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(InspectorModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
