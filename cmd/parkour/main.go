// parkour is a terminal parkour runner: a momentum-driven player crossing
// procedurally generated courses, stage after stage.
//
// Usage:
//
//	parkour list                  - List run modes
//	parkour play [mode]           - Start a run (parkour or timetrial)
//	parkour menu                  - Pick mode and course settings interactively
//	parkour serve                 - Start SSH server for remote play
//	parkour course                - Print a generated course as YAML
//	parkour sim <script.yaml>     - Replay an input script headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set backdrop scatter seed
//	--config <path>       - Custom tuning YAML
//	--theme, --difficulty, --pov, --character - Course and camera settings
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/games/parkour"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagTheme      string
	flagDifficulty string
	flagPOV        string
	flagCharacter  string
	flagFOV        float64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parkour",
	Short: "Parkour Run - momentum platforming in your terminal",
	Long: `Parkour Run drops you onto a procedurally built course of platforms
and bridges. Build speed, chain up to three jumps, slide under pressure
and save the super jump for the gaps you cannot clear.

Available commands:
  list     - Show run modes
  play     - Start a run directly
  menu     - Interactive settings menu
  serve    - Start SSH server for remote play
  course   - Print a generated course
  sim      - Replay an input script without a terminal

Examples:
  parkour play
  parkour play timetrial --theme desert --difficulty hard
  parkour menu
  parkour serve --ssh :2222
  parkour course --stage 3 --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Backdrop scatter seed (0 = config default)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Course theme: city, forest, desert, volcano, ocean, snow, mountain")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagPOV, "pov", "", "Camera: third or first")
	rootCmd.PersistentFlags().StringVar(&flagCharacter, "character", "", "Avatar style: realistic or silhouette")
	rootCmd.PersistentFlags().Float64Var(&flagFOV, "fov", 0, "Baseline field of view in degrees")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.parkour/parkour.log", "Write run events to this file (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(simCmd)
}

// settingsFromFlags applies the setting flags over the defaults.
func settingsFromFlags() (config.Settings, error) {
	s := config.DefaultSettings()
	var err error
	if flagTheme != "" {
		if s.Theme, err = config.ParseTheme(flagTheme); err != nil {
			return s, err
		}
	}
	if flagDifficulty != "" {
		if s.Difficulty, err = config.ParsePreset(flagDifficulty); err != nil {
			return s, err
		}
	}
	if flagPOV != "" {
		if s.POV, err = config.ParsePOV(flagPOV); err != nil {
			return s, err
		}
	}
	switch config.CharacterStyle(flagCharacter) {
	case "":
	case config.CharacterRealistic, config.CharacterSilhouette:
		s.Character = config.CharacterStyle(flagCharacter)
	default:
		return s, fmt.Errorf("unknown character style %q", flagCharacter)
	}
	if flagFOV > 0 {
		s.FOV = flagFOV
	}
	return s, nil
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() (core.RuntimeConfig, error) {
	settings, err := settingsFromFlags()
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Settings = settings
	return cfg, nil
}

// loadTuning loads the tuning file and points the game at it.
func loadTuning() (config.ParkourConfig, error) {
	parkour.SetConfigPath(flagConfig)
	cfg, err := config.LoadParkour(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger returns the event logger. The terminal belongs to the game,
// so events go to a file, or nowhere when --log-file is empty.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "parkour",
	})
	if level, lvlErr := log.ParseLevel(flagLogLevel); lvlErr == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }, nil
}
