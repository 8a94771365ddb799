// Package config loads runtime configuration for the ApplyLine CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the APPLYLINE_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST endpoint
//	-t int      per-request timeout (seconds)
//	-n int      notification time-to-live (seconds)
//	-d string   SQLite database path for local state
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://email-backend-rtn0.onrender.com/api/v1",
//	  "request_timeout": "15s",
//	  "notification_ttl": "4s",
//	  "database_dsn": "applyline.db"
//	}
//
// Primary API
//
//   - type Config                     — holds the runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
