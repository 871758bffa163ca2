package config

import (
	"github.com/joho/godotenv"

	"timebot/internal/logging"
)

// Load builds the effective configuration: defaults, then a .env file when
// one is present, then process environment variables.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development
	if err := godotenv.Load(); err != nil {
		logging.Debugf("config: no .env file loaded: %v\n", err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
