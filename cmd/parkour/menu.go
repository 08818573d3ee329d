package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkour-run/internal/platform/tui"
	"github.com/vovakirdan/parkour-run/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the settings menu",
	Long: `Start in interactive menu mode.

Pick the mode, theme, difficulty, camera and character, then start a
run or inspect the generated course. Leaving a run returns to the menu.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change a setting
  Enter/Space     - Select
  Q/Esc           - Quit

Examples:
  parkour menu
  parkour menu --fps 30
  parkour menu --theme volcano`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	tuning, err := loadTuning()
	if err != nil {
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

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Keep settings and size changes for the next round
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.Inspect {
			goBack, inspErr := tui.RunInspector(tuning, cfg.Settings, cfg.ScreenW, cfg.ScreenH)
			if inspErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", inspErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		logger.Info("run started", "mode", menuResult.GameID, "theme", cfg.Settings.Theme, "difficulty", cfg.Settings.Difficulty)
		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
