package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays configuration values from the environment. Variables
// not present in the environment leave the current values untouched, so
// defaults and JSON-file values survive.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
