package config

import (
	"flag"
	"os"
	"time"

	"github.com/applyline/applyline/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST endpoint (default from Config)
//	-t int      per-request timeout in seconds (default from Config)
//	-n int      notification time-to-live in seconds (default from Config)
//	-d string   SQLite database path (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-n", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend REST endpoint")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	notificationTTL := fs.Int("n", int(cfg.NotificationTTL.Seconds()), "notification time-to-live (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.NotificationTTL = time.Duration(*notificationTTL) * time.Second
}
