package config

import (
	"fmt"
	"strings"
	"time"

	pkgconfig "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/config"
)

const defaultSessionSecret = "change-me-in-production"

// Config holds all configuration for the console service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`

	// Church backend
	BackendBaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:3333"`
	BibleAPIURL    string `env:"BIBLE_API_URL" envDefault:"https://www.abibliadigital.com.br/api"`

	// Sessions
	SessionDir     string        `env:"SESSION_DIR" envDefault:"./data/sessions"`
	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"change-me-in-production"`
	SessionMaxAge  time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`
	SecureCookies  bool          `env:"SECURE_COOKIES" envDefault:"false"`
	UseMemoryStore bool          `env:"SESSION_MEMORY_STORE" envDefault:"false"`

	// HTTP surface
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	RateLimitRPS   int           `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Backend client resilience
	BreakerEnabled bool `env:"BACKEND_BREAKER_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load console config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.Environment != "development" && c.SessionSecret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be changed from default value in %s environment", c.Environment)
	}
	if c.Environment != "development" && !c.SecureCookies {
		return fmt.Errorf("SECURE_COOKIES must be enabled in %s environment", c.Environment)
	}
	if !strings.HasPrefix(c.BackendBaseURL, "http://") && !strings.HasPrefix(c.BackendBaseURL, "https://") {
		return fmt.Errorf("BACKEND_BASE_URL must be an http(s) URL, got %q", c.BackendBaseURL)
	}
	return nil
}
