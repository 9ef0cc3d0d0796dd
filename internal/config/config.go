package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is loaded once at startup and passed explicitly to the clients.
type Config struct {
	APIKey     string        `envconfig:"API_KEY"`
	ORSBaseURL string        `envconfig:"ORS_BASE_URL" default:"https://api.openrouteservice.org"`
	ORSProfile string        `envconfig:"ORS_PROFILE" default:"driving-car"`
	ORSTimeout time.Duration `envconfig:"ORS_TIMEOUT" default:"10s"`

	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Server only.
	Port string `envconfig:"PORT" default:"8080"`

	// CLI only. Empty disables the metrics dump.
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`
}

// Load reads .env (if present) into the environment and decodes Config from it.
func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "config: process environment")
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("config: API_KEY is required")
	}

	cfg.ORSBaseURL = strings.TrimRight(cfg.ORSBaseURL, "/")
	if cfg.ORSBaseURL == "" {
		return nil, errors.New("config: ORS_BASE_URL must not be empty")
	}

	if cfg.ORSTimeout <= 0 {
		return nil, errors.Errorf("config: invalid ORS_TIMEOUT: %s", cfg.ORSTimeout)
	}

	return cfg, nil
}
