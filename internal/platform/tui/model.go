package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/registry"
)

// Mouse drag joystick reach in cells. Rows are about twice as tall as
// columns, so the vertical reach is half the horizontal one.
const (
	stickRadiusCols = 10
	stickRadiusRows = 5
	helpHeight      = 5
)

// dragStick turns a left-button mouse drag into an analog stick reading.
type dragStick struct {
	active           bool
	originX, originY int
	stick            core.Joystick
}

func (d *dragStick) press(x, y int) {
	d.active = true
	d.originX, d.originY = x, y
	d.stick = core.Joystick{}
}

func (d *dragStick) move(x, y int) {
	if !d.active {
		return
	}
	d.stick = core.Joystick{
		X: core.ClampF(float64(x-d.originX)/stickRadiusCols, -1, 1),
		Y: core.ClampF(float64(y-d.originY)/stickRadiusRows, -1, 1),
	}
}

func (d *dragStick) release() {
	*d = dragStick{}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	hold      *core.HoldState
	drag      *dragStick
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	lastTick  time.Time
	showHelp  bool
	quitting  bool
	toMenu    bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil
// logger discards simulation events.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		hold:   core.NewHoldState(core.DefaultHoldWindow),
		drag:   &dragStick{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.fitScreen()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		// Escape pauses a running game; a second press leaves it.
		if m.gameState.Paused || m.gameState.GameOver || m.gameState.StageComplete {
			m.toMenu = true
			return m, nil
		}
		m.hold.Reset()
		m.hold.Press(core.ActionPause, time.Now())
		return m, nil
	}

	now := time.Now()
	for _, a := range m.keys.Actions(msg) {
		m.hold.Press(a, now)
	}
	return m, nil
}

// handleMouse drives the analog joystick from a left-button drag.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag.press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.drag.move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.drag.release()
	}
	return m, nil
}

// handleResize processes window resize events. The renderer adapts to any
// size, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

func (m *Model) fitScreen() {
	h := m.config.ScreenH
	if m.showHelp {
		h -= helpHeight
	}
	m.screen.Resize(m.config.ScreenW, core.Max(h, 0))
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.toMenu || m.quitting {
		return m, nil
	}

	elapsed := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		since := now.Sub(m.lastTick)
		// A stray tick from a previous model would start a second loop.
		if since < tickInterval(m.config.TickRate)/2 {
			return m, nil
		}
		elapsed = since.Seconds()
	}
	m.lastTick = now

	frame := m.hold.Frame(now, elapsed)
	if m.drag.active {
		stick := m.drag.stick
		frame.Joystick = &stick
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	for _, ev := range result.Events {
		logEvent(m.logger, m.game.ID(), ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// logEvent reports a simulation event. Routine movement goes to debug.
func logEvent(logger *log.Logger, gameID string, ev core.Event) {
	switch ev.Kind {
	case core.EventLanded:
		logger.Debug("landed", "game", gameID, "combo", ev.Value, "time", ev.Time)
	case core.EventJumped:
		logger.Debug("jumped", "game", gameID, "charge", ev.Value, "time", ev.Time)
	case core.EventSuperJumped:
		logger.Debug("super jump", "game", gameID, "combo", ev.Value, "time", ev.Time)
	case core.EventRecovered:
		logger.Info("fell off the course", "game", gameID, "lost_combo", ev.Value, "time", ev.Time)
	case core.EventStageComplete:
		logger.Info("stage cleared", "game", gameID, "stage", ev.Value, "time", fmt.Sprintf("%.2fs", ev.Time))
	case core.EventCourseRebuilt:
		logger.Info("course rebuilt", "game", gameID, "generation", ev.Value)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.toMenu
}

// Run starts the Bubble Tea program for a single game. Leaving to the
// menu ends the program.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		exitOnMenu{NewModel(game, cfg, logger)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// exitOnMenu quits the program when the wrapped model asks for the menu.
type exitOnMenu struct {
	Model
}

func (e exitOnMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := e.Model.Update(msg)
	if nm, ok := next.(Model); ok {
		e.Model = nm
	}
	if e.BackToMenu() {
		return e, tea.Quit
	}
	return e, cmd
}
