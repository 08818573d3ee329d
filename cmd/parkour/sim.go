package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/parkour-run/internal/games/parkour"
)

var simCmd = &cobra.Command{
	Use:   "sim <script.yaml>",
	Short: "Replay an input script without a terminal",
	Long: `Run the simulation headless from a YAML input script and print a
report of the events and the final player state.

Every tick advances exactly 1/tick_rate seconds, so a script always
produces the same report.

Script format:
  mode: parkour          # or timetrial
  theme: city
  difficulty: medium
  tick_rate: 60
  steps:
    - ticks: 60                      # stand still for a second
    - ticks: 45
      actions: [forward, sprint]
    - ticks: 30
      actions: [forward]
      tap: [jump]                    # pressed on the first tick only
    - ticks: 20
      joystick: {x: 0.3, y: -1}

Examples:
  parkour sim run.yaml
  parkour sim run.yaml --config ./floaty.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func runSim(_ *cobra.Command, args []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}
	script, err := parkour.LoadScript(args[0])
	if err != nil {
		return err
	}

	report, err := parkour.RunScript(script, tuning)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
