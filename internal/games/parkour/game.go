// Package parkour implements the parkour run: a movement controller driven
// across a procedurally built course, stage after stage.
package parkour

import (
	"math"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/course"
	"github.com/vovakirdan/parkour-run/internal/movement"
	"github.com/vovakirdan/parkour-run/internal/registry"
)

// Mode selects what happens when the finish is reached.
type Mode int

const (
	// ModeCampaign advances to the next stage on request.
	ModeCampaign Mode = iota
	// ModeTimeTrial ends the run on the first finish.
	ModeTimeTrial
)

// Score weights.
const (
	ScorePerSecond = 10
	ScorePerCombo  = 150
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game runs one player through the stages of a course.
type Game struct {
	mode     Mode
	runtime  core.RuntimeConfig
	cfg      config.ParkourConfig
	settings config.Settings

	director *course.Director
	course   *course.Course
	ctrl     *movement.Controller
	finish   *course.FinishTrigger

	stage         int
	runTime       float64 // Seconds on the current stage, stops at the finish
	finishTime    float64
	paused        bool
	stageComplete bool
	gameOver      bool
	ticks         int

	stats  core.PlayerStats
	events []core.Event
}

// New creates a campaign game instance.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewTimeTrial creates a single-stage time trial instance.
func NewTimeTrial() *Game {
	return &Game{mode: ModeTimeTrial}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeTimeTrial {
		return "timetrial"
	}
	return "parkour"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeTimeTrial {
		return "Parkour Time Trial"
	}
	return "Parkour Run"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeTimeTrial {
		return "One stage against the clock"
	}
	return "Clear stage after stage, chaining jumps for combo"
}

// Reset initializes or restarts the run from stage 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadParkour(configPath)
	if err != nil {
		cfg = config.DefaultParkourConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith restarts the run with explicit tuning instead of loading it.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ParkourConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	if runtime.Seed != 0 {
		cfg.Course.BackdropSeed = uint64(runtime.Seed)
	}
	g.runtime = runtime
	g.cfg = cfg
	g.settings = normalizeSettings(runtime.Settings)

	g.director = course.NewDirector(cfg)
	g.ctrl = movement.NewController(cfg)
	g.finish = course.NewFinishTrigger(cfg.Course.FinishProximity)
	g.stage = 1
	g.gameOver = false
	g.events = nil
	g.ticks = 0
	g.enterStage()
}

func normalizeSettings(s config.Settings) config.Settings {
	def := config.DefaultSettings()
	var err error
	if s.Theme, err = config.ParseTheme(string(s.Theme)); err != nil {
		s.Theme = def.Theme
	}
	if s.Difficulty, err = config.ParsePreset(string(s.Difficulty)); err != nil {
		s.Difficulty = def.Difficulty
	}
	if s.POV, err = config.ParsePOV(string(s.POV)); err != nil {
		s.POV = def.POV
	}
	if s.Character != config.CharacterSilhouette && s.Character != config.CharacterRealistic {
		s.Character = def.Character
	}
	if s.FOV <= 0 {
		s.FOV = def.FOV
	}
	return s
}

// enterStage makes sure the course matches the stage and settings, then
// puts the player on its spawn with a fresh clock.
func (g *Game) enterStage() {
	g.runTime = 0
	g.finishTime = 0
	g.paused = false
	g.stageComplete = false

	c, rebuilt := g.director.Ensure(g.settings, g.stage)
	g.course = c
	if rebuilt {
		g.emit(core.Event{Kind: core.EventCourseRebuilt, Value: int(c.Generation)})
	}
	g.ctrl.SetView(g.settings.POV, g.settings.FOV)
	g.ctrl.Reset(c.Spawn)
	g.finish.Arm(c.Generation)
	g.refreshStats()
}

// ApplySettings changes theme, difficulty or camera mid-run. A theme or
// difficulty change rebuilds the course and restarts the stage.
func (g *Game) ApplySettings(s config.Settings) {
	s = normalizeSettings(s)
	rebuild := s.Theme != g.settings.Theme || s.Difficulty != g.settings.Difficulty
	g.settings = s
	if rebuild {
		g.enterStage()
		return
	}
	g.ctrl.SetView(s.POV, s.FOV)
}

// Settings returns the active player settings.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionTogglePOV) {
		g.settings.POV = g.settings.POV.Toggle()
		g.ctrl.SetView(g.settings.POV, g.settings.FOV)
	}

	if in.Has(core.ActionRestart) {
		if g.gameOver {
			rt := g.runtime
			rt.Settings = g.settings
			g.ResetWith(rt, g.cfg)
		} else {
			g.enterStage()
		}
		return g.result()
	}

	if g.stageComplete {
		if in.Has(core.ActionNextStage) && g.mode == ModeCampaign {
			g.stage++
			g.enterStage()
		}
		return g.result()
	}

	if g.gameOver {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = 1 / float64(g.runtime.TickRate)
	}
	out := g.ctrl.Tick(dt, movement.IntentFromFrame(in), g.course)
	g.ticks++
	g.runTime += out.Step

	for _, ev := range out.Events {
		g.emit(ev)
	}

	if g.finish.Observe(g.course, out.Hit, g.ctrl.State().Position) {
		g.stageComplete = true
		g.finishTime = g.runTime
		g.emit(core.Event{Kind: core.EventStageComplete, Value: g.stage})
		if g.mode == ModeTimeTrial {
			g.gameOver = true
		}
	}

	g.refreshStats()
	return g.result()
}

// emit stamps an event with the stage clock and queues it for the host.
// Events raised outside Step, such as the first build, go out with the
// next step.
func (g *Game) emit(ev core.Event) {
	ev.Time = g.runTime
	g.events = append(g.events, ev)
}

func (g *Game) refreshStats() {
	t := g.ctrl.Telemetry()
	g.stats = core.PlayerStats{
		Speed:             t.Speed,
		Time:              g.runTime,
		Combo:             t.Combo,
		Score:             Score(g.runTime, t.Combo),
		SuperJumpReady:    t.SuperJumpReady,
		SuperJumpCooldown: t.SuperJumpCooldown,
		JumpsRemaining:    t.JumpsRemaining,
		Stage:             g.stage,
	}
}

// result drains the queued events into the step result.
func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
		g.events = g.events[:0]
	}
	return core.StepResult{State: g.State(), Stats: g.stats, Events: events}
}

// Score rewards time spent running plus every chained jump.
func Score(seconds float64, combo int) int {
	return int(math.Floor(seconds*ScorePerSecond)) + combo*ScorePerCombo
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.stats.Score,
		Stage:         g.stage,
		GameOver:      g.gameOver,
		Paused:        g.paused,
		StageComplete: g.stageComplete,
	}
}

// Stats returns the latest telemetry snapshot.
func (g *Game) Stats() core.PlayerStats {
	return g.stats
}

// FinishTime returns the clock at the moment the finish fired.
func (g *Game) FinishTime() float64 {
	return g.finishTime
}

// Course returns the live course.
func (g *Game) Course() *course.Course {
	return g.course
}

// Player returns a copy of the controller state.
func (g *Game) Player() movement.State {
	return g.ctrl.State()
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// Register the run modes with the registry
func init() {
	registry.Register("parkour", func() registry.Game {
		return New()
	})
	registry.Register("timetrial", func() registry.Game {
		return NewTimeTrial()
	})
}
