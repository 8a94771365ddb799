package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment variable parsing. Durations accept the
// usual Go syntax ("15s", "2m").
type envConfig struct {
	APIBaseURL      string        `env:"APPLYLINE_API_BASE_URL"`
	RequestTimeout  time.Duration `env:"APPLYLINE_REQUEST_TIMEOUT"`
	NotificationTTL time.Duration `env:"APPLYLINE_NOTIFICATION_TTL"`
	DatabaseDSN     string        `env:"APPLYLINE_DATABASE_DSN"`
}

// parseEnv overlays Config with values from APPLYLINE_* environment
// variables. Unset variables leave the current values in place. Panics on
// malformed values.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.NotificationTTL != 0 {
		cfg.NotificationTTL = ec.NotificationTTL
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
}
