package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkour-run/internal/platform/tui"
	"github.com/vovakirdan/parkour-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a run",
	Long: `Start a run in the given mode (default: parkour).

Controls:
  W/A/S/D, Up/Down   - Move (capitals sprint)
  Left/Right, J/L    - Turn the view
  Space              - Jump (up to three in a row)
  E                  - Super jump
  C                  - Slide
  V                  - Toggle first/third person
  P                  - Pause
  R                  - Restart the stage
  N/Enter            - Next stage, after the finish
  Mouse drag         - Analog stick
  ?                  - Help
  Q/Ctrl+C           - Quit

Examples:
  parkour play
  parkour play timetrial --difficulty hard
  parkour play --theme snow --pov first
  parkour play --config ./floaty.yaml --log-file run.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "parkour"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'parkour list' to see modes", gameID)
	}

	if _, err := loadTuning(); err != nil {
		return err
	}
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("run started", "mode", gameID, "theme", cfg.Settings.Theme, "difficulty", cfg.Settings.Difficulty)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
