package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/elektrokombinacija/nanoforge/internal/assemble"
)

func runSolve(args []string) error {
	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	fs.String("model", "", "path to the target .mdl model file")
	fs.String("out", "", "path to write the assembly trace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v := bindViper(fs)

	modelPath := v.GetString("model")
	outPath := v.GetString("out")
	if modelPath == "" || outPath == "" {
		return fmt.Errorf("solve: --model and --out are required")
	}

	grid, err := loadModel(modelPath)
	if err != nil {
		return err
	}

	driver := assemble.New(grid)
	trace, metrics, err := driver.Solve()
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	if err := writeTrace(outPath, trace); err != nil {
		return err
	}

	log.Info().
		Int("energy", metrics.Energy).
		Int("steps", metrics.StepsExecuted).
		Int("peak_fleet", metrics.PeakFleetSize).
		Msg("solve: assembly trace written")
	return nil
}
