// Package commands implements the housekeep CLI commands.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mailhaus/housekeep/internal/adapter"
	"github.com/mailhaus/housekeep/internal/cli/config"
	"github.com/mailhaus/housekeep/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	DB       *sql.DB
}

// openDatabase connects to the database described by cfg.
// It is a variable so tests can swap in a mock connection.
var openDatabase = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, func(), error) {
	var a adapter.Adapter = adapter.NewPostgresAdapter(logger)
	err := a.Connect(ctx, adapter.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Database: cfg.DBName,
		Username: cfg.DBUser,
		Password: cfg.DBPassword,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		return nil, nil, err
	}
	db, err := a.Handle()
	if err != nil {
		_ = a.Close()
		return nil, nil, err
	}
	return db, func() { _ = a.Close() }, nil
}

// NewCommandContext creates a CommandContext without a database connection.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// NewConnectedContext creates a CommandContext with an open database
// connection. Returns the context and a cleanup function that must be called
// (typically via defer).
func NewConnectedContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cmdCtx := NewCommandContext(cmd)

	if err := cmdCtx.Cfg.ValidateConnection(); err != nil {
		return nil, nil, err
	}

	db, cleanup, err := openDatabase(cmd.Context(), cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", cmdCtx.Cfg.DBName, err)
	}
	cmdCtx.DB = db
	return cmdCtx, cleanup, nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables (commands constructed outside the root command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	port := config.DefaultDBPort
	if v := os.Getenv("HOUSEKEEP_DB_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	return &config.Config{
		DBHost:       getEnvOrDefault("HOUSEKEEP_DB_HOST", config.DefaultDBHost),
		DBPort:       port,
		DBName:       getEnvOrDefault("HOUSEKEEP_DB_NAME", config.DefaultDBName),
		DBUser:       os.Getenv("HOUSEKEEP_DB_USER"),
		DBPassword:   os.Getenv("HOUSEKEEP_DB_PASSWORD"),
		DBSSLMode:    getEnvOrDefault("HOUSEKEEP_DB_SSLMODE", config.DefaultSSLMode),
		State:        getEnvOrDefault("HOUSEKEEP_STATE", config.DefaultState),
		Verbose:      os.Getenv("HOUSEKEEP_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("HOUSEKEEP_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
