package config

import "time"

// Config holds runtime settings for the ApplyLine CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST endpoint, including the
//     version prefix (e.g. https://host/api/v1).
//   - RequestTimeout: upper bound for a single backend request.
//   - NotificationTTL: how long a queued notification stays visible.
//   - DatabaseDSN: path of the SQLite file holding local client state.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	DatabaseDSN     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://email-backend-rtn0.onrender.com/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.NotificationTTL = 4 * time.Second
	c.DatabaseDSN = "applyline.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
