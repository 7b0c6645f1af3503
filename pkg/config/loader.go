package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load populates cfg from the process environment. Fields are mapped
// through `env` struct tags, with `envDefault` supplying fallbacks:
//
//	type Config struct {
//	    SessionDir     string `env:"SESSION_DIR" envDefault:"./sessions"`
//	    BackendBaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:3333"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
