package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/elektrokombinacija/nanoforge/internal/assemble"
	"github.com/elektrokombinacija/nanoforge/internal/invert"
)

// runReconfigure produces the trace that turns a fleet holding SOURCE into
// one holding TARGET: disassemble SOURCE's own assembly trace (dropping its
// terminal Halt) and append a fresh assembly of TARGET.
func runReconfigure(args []string) error {
	fs := pflag.NewFlagSet("reconfigure", pflag.ContinueOnError)
	fs.String("source", "", "path to the source .mdl model")
	fs.String("target", "", "path to the target .mdl model")
	fs.String("out", "", "path to write the reconfiguration trace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v := bindViper(fs)

	sourcePath := v.GetString("source")
	targetPath := v.GetString("target")
	outPath := v.GetString("out")
	if sourcePath == "" || targetPath == "" || outPath == "" {
		return fmt.Errorf("reconfigure: --source, --target and --out are required")
	}

	sourceGrid, err := loadModel(sourcePath)
	if err != nil {
		return err
	}
	targetGrid, err := loadModel(targetPath)
	if err != nil {
		return err
	}

	sourceTrace, _, err := assemble.New(sourceGrid).Solve()
	if err != nil {
		return fmt.Errorf("reconfigure: solving source: %w", err)
	}
	teardown, err := invert.Invert(sourceTrace, true)
	if err != nil {
		return fmt.Errorf("reconfigure: inverting source: %w", err)
	}

	targetTrace, metrics, err := assemble.New(targetGrid).Solve()
	if err != nil {
		return fmt.Errorf("reconfigure: solving target: %w", err)
	}

	full := append(teardown, targetTrace...)
	if err := writeTrace(outPath, full); err != nil {
		return err
	}

	log.Info().
		Int("teardown_ticks", len(teardown)).
		Int("rebuild_ticks", len(targetTrace)).
		Int("rebuild_energy", metrics.Energy).
		Msg("reconfigure: trace written")
	return nil
}
