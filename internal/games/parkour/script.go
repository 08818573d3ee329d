package parkour

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("invalid sim script")

// Script is a headless input recording: a course selection followed by
// runs of ticks with fixed input.
type Script struct {
	Mode       string       `yaml:"mode,omitempty"` // parkour or timetrial
	Seed       int64        `yaml:"seed,omitempty"`
	Theme      string       `yaml:"theme,omitempty"`
	Difficulty string       `yaml:"difficulty,omitempty"`
	POV        string       `yaml:"pov,omitempty"`
	TickRate   int          `yaml:"tick_rate,omitempty"`
	Steps      []ScriptStep `yaml:"steps"`
}

// ScriptStep holds input steady for a number of ticks.
type ScriptStep struct {
	Ticks    int            `yaml:"ticks"`
	Actions  []string       `yaml:"actions,omitempty"`
	Joystick *core.Joystick `yaml:"joystick,omitempty"`
	Tap      []string       `yaml:"tap,omitempty"` // Held on the first tick only
}

// EventRecord is a serialisable simulation event.
type EventRecord struct {
	Tick  int     `yaml:"tick"`
	Kind  string  `yaml:"kind"`
	Time  float64 `yaml:"time"`
	Value int     `yaml:"value"`
}

// Report summarises a replayed script.
type Report struct {
	Game       string        `yaml:"game"`
	Course     string        `yaml:"course"`
	Ticks      int           `yaml:"ticks"`
	Finished   bool          `yaml:"finished"`
	FinishTime float64       `yaml:"finish_time,omitempty"`
	Stage      int           `yaml:"stage"`
	Score      int           `yaml:"score"`
	Combo      int           `yaml:"combo"`
	Speed      float64       `yaml:"speed"`
	Position   [3]float64    `yaml:"position"`
	Grounded   bool          `yaml:"grounded"`
	Events     []EventRecord `yaml:"events"`
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks names and counts without running anything.
func (s Script) Validate() error {
	if _, err := s.settings(); err != nil {
		return err
	}
	switch s.Mode {
	case "", "parkour", "timetrial":
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidScript, s.Mode)
	}
	if s.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidScript, s.TickRate)
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return fmt.Errorf("%w: step %d has %d ticks", ErrInvalidScript, i, st.Ticks)
		}
		for _, name := range append(append([]string{}, st.Actions...), st.Tap...) {
			if _, err := ParseAction(name); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i, err)
			}
		}
	}
	return nil
}

func (s Script) settings() (config.Settings, error) {
	out := config.DefaultSettings()
	var err error
	if s.Theme != "" {
		if out.Theme, err = config.ParseTheme(s.Theme); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidScript, err)
		}
	}
	if s.Difficulty != "" {
		if out.Difficulty, err = config.ParsePreset(s.Difficulty); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidScript, err)
		}
	}
	if s.POV != "" {
		if out.POV, err = config.ParsePOV(s.POV); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidScript, err)
		}
	}
	return out, nil
}

// scriptActions are the actions a script may hold. Quit is host-only.
var scriptActions = []core.Action{
	core.ActionForward, core.ActionBack, core.ActionStrafeLeft, core.ActionStrafeRight,
	core.ActionTurnLeft, core.ActionTurnRight, core.ActionSprint, core.ActionSlide,
	core.ActionJump, core.ActionSuperJump, core.ActionPause, core.ActionRestart,
	core.ActionNextStage, core.ActionTogglePOV,
}

// ParseAction resolves an action name such as "jump" or "strafe_left".
func ParseAction(name string) (core.Action, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "")
	for _, a := range scriptActions {
		if strings.ToLower(a.String()) == key {
			return a, nil
		}
	}
	return core.ActionNone, fmt.Errorf("unknown action %q", name)
}

// RunScript replays a script against fresh game state using the given
// tuning. Every tick advances exactly 1/tick_rate seconds, so a script
// always produces the same report.
func RunScript(s Script, cfg config.ParkourConfig) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	settings, _ := s.settings()

	g := New()
	if s.Mode == "timetrial" {
		g = NewTimeTrial()
	}
	rt := core.DefaultConfig()
	rt.Seed = s.Seed
	rt.Settings = settings
	if s.TickRate > 0 {
		rt.TickRate = s.TickRate
	}
	g.ResetWith(rt, cfg)
	dt := 1 / float64(rt.TickRate)

	rep := Report{Game: g.ID()}
	record := func(events []core.Event) {
		for _, ev := range events {
			rep.Events = append(rep.Events, EventRecord{
				Tick: rep.Ticks, Kind: ev.Kind.String(), Time: ev.Time, Value: ev.Value,
			})
			if ev.Kind == core.EventStageComplete {
				rep.Finished = true
				rep.FinishTime = g.FinishTime()
			}
		}
	}
	frame := core.NewInputFrame()
	for _, st := range s.Steps {
		for i := 0; i < st.Ticks; i++ {
			frame.Clear()
			frame.Elapsed = dt
			for _, name := range st.Actions {
				a, _ := ParseAction(name)
				frame.Set(a)
			}
			if i == 0 {
				for _, name := range st.Tap {
					a, _ := ParseAction(name)
					frame.Set(a)
				}
			}
			if st.Joystick != nil {
				j := *st.Joystick
				frame.Joystick = &j
			}
			res := g.Step(frame)
			rep.Ticks++
			record(res.Events)
		}
	}

	p := g.Player()
	rep.Course = g.Course().Key.String()
	rep.Stage = g.stats.Stage
	rep.Score = g.stats.Score
	rep.Combo = g.stats.Combo
	rep.Speed = g.stats.Speed
	rep.Position = [3]float64{p.Position.X(), p.Position.Y(), p.Position.Z()}
	rep.Grounded = p.Grounded
	return rep, nil
}
