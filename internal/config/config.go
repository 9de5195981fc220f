// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/hatchforge/brood-api/internal/errors"
)

// Config holds everything the server needs to start
type Config struct {
	// HTTPAddr is the listen address for the JSON API
	HTTPAddr string `env:"BROOD_HTTP_ADDR" envDefault:":8080"`

	// RedisAddr points at the species store
	RedisAddr     string `env:"BROOD_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"BROOD_REDIS_PASSWORD"`
	RedisDB       int    `env:"BROOD_REDIS_DB" envDefault:"0"`

	// BestiaryBaseURL is the upstream reference API the catalog syncs from
	BestiaryBaseURL string        `env:"BROOD_BESTIARY_BASE_URL" envDefault:"https://bestiary.hatchforge.io/api/v2"`
	BestiaryTimeout time.Duration `env:"BROOD_BESTIARY_TIMEOUT" envDefault:"15s"`

	// SyncOnStartup runs a catalog sync in the background once the server is up
	SyncOnStartup bool `env:"BROOD_SYNC_ON_STARTUP" envDefault:"true"`

	// ShutdownTimeout bounds graceful drain on SIGINT/SIGTERM
	ShutdownTimeout time.Duration `env:"BROOD_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads a .env file if one is present, then parses the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures required settings are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTPAddr == "" {
		vb.RequiredField("HTTPAddr")
	}
	if c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.BestiaryBaseURL == "" {
		vb.RequiredField("BestiaryBaseURL")
	}

	return vb.Build()
}
