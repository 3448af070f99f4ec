package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/elektrokombinacija/nanoforge/internal/invert"
)

func runDisassemble(args []string) error {
	fs := pflag.NewFlagSet("disassemble", pflag.ContinueOnError)
	fs.String("trace", "", "path to the assembly trace to invert")
	fs.String("out", "", "path to write the disassembly trace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v := bindViper(fs)

	tracePath := v.GetString("trace")
	outPath := v.GetString("out")
	if tracePath == "" || outPath == "" {
		return fmt.Errorf("disassemble: --trace and --out are required")
	}

	in, err := loadTrace(tracePath)
	if err != nil {
		return err
	}

	out, err := invert.Invert(in, false)
	if err != nil {
		return fmt.Errorf("disassemble: %w", err)
	}

	if err := writeTrace(outPath, out); err != nil {
		return err
	}

	log.Info().Int("ticks", len(out)).Msg("disassemble: trace written")
	return nil
}
