package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindViper wires fs into a fresh viper instance that also reads
// NANOFORGE_-prefixed environment variables, so every flag in fs can be
// set via --flag or the matching env var.
func bindViper(fs *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("nanoforge")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(fs)
	return v
}
