package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/course"
)

var (
	flagStage    int
	flagDefaults bool
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Print a generated course",
	Long: `Build the course for a stage and print its surfaces as YAML.

Courses are a pure function of stage, theme, difficulty and tuning, so
the output is identical on every run.

Examples:
  parkour course
  parkour course --stage 4 --difficulty hard
  parkour course --defaults > parkour.yaml   # dump default tuning`,
	RunE: runCourse,
}

func init() {
	courseCmd.Flags().IntVar(&flagStage, "stage", 1, "Stage number")
	courseCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the default tuning YAML instead")
}

func runCourse(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	tuning, err := loadTuning()
	if err != nil {
		return err
	}
	settings, err := settingsFromFlags()
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		tuning.Course.BackdropSeed = uint64(flagSeed)
	}

	c := course.Build(course.NewParams(tuning, settings, flagStage))
	out, err := yaml.Marshal(course.Summarize(c))
	if err != nil {
		return fmt.Errorf("encoding course: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
