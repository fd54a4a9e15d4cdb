package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process settings read from the environment. Command-line
// flags take precedence over every field.
type Env struct {
	ConfigPath string `env:"TACTIX_CONFIG"`
	LogLevel   string `env:"TACTIX_LOG_LEVEL" envDefault:"warn"`
	Seed       int64  `env:"TACTIX_SEED"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
