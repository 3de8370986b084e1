package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the CLI defaults. Flags override every field.
type Env struct {
	Scenario string `env:"SKIRMISH_SCENARIO" envDefault:"assets/scenario.yaml"`
	Out      string `env:"SKIRMISH_OUT" envDefault:"out.json"`
	Runs     int    `env:"SKIRMISH_RUNS" envDefault:"1"`
	Seed     int64  `env:"SKIRMISH_SEED" envDefault:"12345"`
	Workers  int    `env:"SKIRMISH_WORKERS" envDefault:"8"`
	SaveLog  bool   `env:"SKIRMISH_SAVE_LOG" envDefault:"true"`
	LogLevel string `env:"SKIRMISH_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadEnv() (Env, error) {
	var cfg Env
	err := ParseEnv(&cfg)
	return cfg, err
}
