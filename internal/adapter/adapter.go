// Package adapter provides the database adapter used by housekeep to talk
// to the mailhaus PostgreSQL database.
package adapter

import (
	"context"
	"database/sql"
)

// Config holds the configuration for connecting to a database.
type Config struct {
	// Host is the database server hostname
	Host string

	// Port is the database server port
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string

	// SSLMode controls transport security (e.g. "require", "disable").
	// Defaults to "require" when empty; mailhaus instances are remote.
	SSLMode string
}

// Adapter defines the interface for database connections.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Handle returns the underlying *sql.DB, or an error when not connected.
	Handle() (*sql.DB, error)

	// DialectName returns the SQL dialect name for this adapter (e.g., "postgres").
	DialectName() string
}
