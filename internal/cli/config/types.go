// Package config provides configuration management for the housekeep CLI.
//
// Configuration is merged from four sources, highest priority first:
// command-line flags, HOUSEKEEP_* environment variables, a housekeep.yaml
// config file, and built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	DBHost     string `koanf:"db_host"`
	DBPort     int    `koanf:"db_port"`
	DBName     string `koanf:"db_name"`
	DBUser     string `koanf:"db_user"`
	DBPassword string `koanf:"db_password"`
	DBSSLMode  string `koanf:"db_sslmode"`

	// State is the two-letter US state code targeted by purge and counts.
	State string `koanf:"state"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultDBHost  = "localhost"
	DefaultDBPort  = 5432
	DefaultDBName  = "mailhaus"
	DefaultSSLMode = "require"
	DefaultState   = "HI"
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
