package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/B1NYL/Promp-E-sub000/internal/storage"
)

// Config is loaded from environment variables at startup.
type Config struct {
	DBPath         string        `env:"PROMPE_DB_PATH"`
	BackendURL     string        `env:"PROMPE_BACKEND_URL" envDefault:"http://localhost:8787"`
	RequestTimeout time.Duration `env:"PROMPE_REQUEST_TIMEOUT" envDefault:"60s"`
	Debug          bool          `env:"PROMPE_DEBUG"`
}

// FromEnv parses configuration from the environment, filling in the default
// database path when none is set.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
