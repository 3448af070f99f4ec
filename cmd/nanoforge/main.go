// Command nanoforge builds and inverts nanobot assembly traces for 3D
// models: solve assembles a target model, disassemble inverts an
// assembly trace, and reconfigure chains disassembly of one model into
// assembly of another.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configureLogging()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nanoforge <solve|disassemble|reconfigure> [flags]")
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "disassemble":
		err = runDisassemble(os.Args[2:])
	case "reconfigure":
		err = runReconfigure(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "nanoforge: unknown subcommand %q\n", os.Args[1])
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msg("nanoforge: failed")
		os.Exit(1)
	}
}

func configureLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if v := os.Getenv("NANOFORGE_LOG_LEVEL"); v != "" {
		if lvl, err := zerolog.ParseLevel(v); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}
