package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parkour-run/internal/core"
)

// KeyMap defines the in-game key bindings. Terminals report no key
// release and no bare shift, so the capital movement keys double as
// sprint and held keys are latched by core.HoldState.
type KeyMap struct {
	Forward     key.Binding
	Back        key.Binding
	StrafeLeft  key.Binding
	StrafeRight key.Binding
	TurnLeft    key.Binding
	TurnRight   key.Binding
	Sprint      key.Binding
	Slide       key.Binding
	Jump        key.Binding
	SuperJump   key.Binding
	Pause       key.Binding
	Restart     key.Binding
	NextStage   key.Binding
	TogglePOV   key.Binding
	Menu        key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.TurnLeft, k.Jump, k.SuperJump, k.Slide, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.StrafeLeft, k.StrafeRight},
		{k.TurnLeft, k.TurnRight, k.Sprint, k.Slide},
		{k.Jump, k.SuperJump, k.TogglePOV, k.Pause},
		{k.Restart, k.NextStage, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w/↑", "forward"),
		),
		Back: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s/↓", "back"),
		),
		StrafeLeft: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "strafe left"),
		),
		StrafeRight: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "strafe right"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "j"),
			key.WithHelp("←/j", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "turn right"),
		),
		Sprint: key.NewBinding(
			key.WithKeys("W", "A", "S", "D", "shift+up", "shift+down"),
			key.WithHelp("W/A/S/D", "sprint"),
		),
		Slide: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		SuperJump: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e", "super jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart stage"),
		),
		NextStage: key.NewBinding(
			key.WithKeys("n", "N", "enter"),
			key.WithHelp("n", "next stage"),
		),
		TogglePOV: key.NewBinding(
			key.WithKeys("v", "V"),
			key.WithHelp("v", "camera"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// actionBindings pairs each game action with its binding, in the order
// actions are collected from a key.
func (k KeyMap) actionBindings() []struct {
	action  core.Action
	binding key.Binding
} {
	return []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionForward, k.Forward},
		{core.ActionBack, k.Back},
		{core.ActionStrafeLeft, k.StrafeLeft},
		{core.ActionStrafeRight, k.StrafeRight},
		{core.ActionTurnLeft, k.TurnLeft},
		{core.ActionTurnRight, k.TurnRight},
		{core.ActionSprint, k.Sprint},
		{core.ActionSlide, k.Slide},
		{core.ActionJump, k.Jump},
		{core.ActionSuperJump, k.SuperJump},
		{core.ActionPause, k.Pause},
		{core.ActionRestart, k.Restart},
		{core.ActionNextStage, k.NextStage},
		{core.ActionTogglePOV, k.TogglePOV},
	}
}

// Actions returns every game action a key message maps to. A capital
// movement key yields both the direction and sprint.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	for _, ab := range k.actionBindings() {
		if key.Matches(msg, ab.binding) {
			out = append(out, ab.action)
		}
	}
	return out
}

// MenuKeyMap defines the bindings of the settings menu and the inspector.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}
