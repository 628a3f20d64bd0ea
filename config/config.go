package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const Prefix = "STRATEGIES_"

// Config holds the settings shared by all commands. Command-line flags take
// precedence over these values.
type Config struct {
	Goroutines   int    `env:"GOROUTINES" envDefault:"8"`
	OutputDir    string `env:"OUTPUT_DIR" envDefault:"experiments"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	SkipFailures bool   `env:"SKIP_FAILURES" envDefault:"false"`
	Seed         uint64 `env:"SEED" envDefault:"1234"`
}

// Load reads the configuration from STRATEGIES_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Goroutines < 1 {
		return Config{}, fmt.Errorf("goroutines must be positive, got %d", cfg.Goroutines)
	}
	return cfg, nil
}
