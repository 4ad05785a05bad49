package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailhaus/housekeep/internal/schema"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|version]",
		Short: "Apply the mailhaus schema to a database",
		Long: `Run the embedded schema migrations against the configured database.

Intended for provisioning development and test databases with the mailhaus
tables, history tables, and change-tracking triggers. Production databases
are managed elsewhere; doctor verifies them without mutating.`,
		Example: `  # Apply all pending migrations
  housekeep migrate up

  # Show migration status
  housekeep migrate status`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "version"},
		RunE:      runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cmdCtx, cleanup, err := NewConnectedContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	r := cmdCtx.Renderer

	action := "up"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "up":
		if err := schema.Migrate(ctx, cmdCtx.DB); err != nil {
			return err
		}
		r.Success("Migrations applied")
	case "down":
		if err := schema.Rollback(ctx, cmdCtx.DB); err != nil {
			return err
		}
		r.Success("Rolled back one migration")
	case "status":
		if err := schema.Status(ctx, cmdCtx.DB); err != nil {
			return err
		}
	case "version":
		version, err := schema.Version(ctx, cmdCtx.DB)
		if err != nil {
			return err
		}
		r.Printf("schema version: %d\n", version)
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}

	return nil
}
