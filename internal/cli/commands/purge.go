package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mailhaus/housekeep/internal/cli/config"
	"github.com/mailhaus/housekeep/internal/purge"
)

// PurgeOptions holds options for the purge command.
type PurgeOptions struct {
	State string // Two-letter state code; overrides the configured state
}

// NewPurgeCommand creates the purge command.
func NewPurgeCommand() *cobra.Command {
	opts := &PurgeOptions{}
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all records for properties in a state",
		Long: `Delete every record associated with properties located in a US state,
across all related mailhaus tables, in foreign-key order.

The command lists the matching properties and per-table record counts, then
asks for confirmation twice: once before deleting and once before committing.
Answering anything other than "yes" to the first prompt leaves the database
untouched; declining the second rolls back every delete from this run.

Change-tracking triggers on property_owners and properties are suspended
around their deletes so the purge itself does not generate history rows.`,
		Example: `  # Purge the configured state (HI by default)
  housekeep purge

  # Purge a different state
  housekeep purge --state AK`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPurge(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.State, "state", "", "Two-letter state code (overrides config)")

	return cmd
}

func runPurge(cmd *cobra.Command, opts *PurgeOptions) error {
	cmdCtx, cleanup, err := NewConnectedContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	r := cmdCtx.Renderer

	state, err := resolveState(cmdCtx.Cfg, opts.State)
	if err != nil {
		return err
	}

	purger := purge.New(cmdCtx.DB, cmdCtx.Logger)

	// The target set is captured once and reused for all counts and deletes.
	props, err := purger.FindProperties(ctx, state)
	if err != nil {
		return err
	}
	if len(props) == 0 {
		r.Printf("No properties found in %s. Nothing to delete.\n", state)
		return nil
	}

	r.Printf("Found %d properties in %s that will be deleted:\n", len(props), state)
	renderProperties(r, props)

	ids := purge.PropertyIDs(props)

	counts, err := purger.CountRelated(ctx, cmdCtx.DB, ids)
	if err != nil {
		return err
	}
	r.Heading("Records that will be deleted:")
	renderCounts(r, counts)

	if purge.Total(counts) == 0 {
		r.Printf("No related records found. Nothing to delete.\n")
		return nil
	}

	prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	if !prompter.Confirm("\nDo you want to proceed with deletion? (yes/no): ") {
		r.Println("Cleanup cancelled.")
		return nil
	}

	r.Println("\nExecuting cleanup...")

	tx, err := cmdCtx.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	done := false
	defer func() {
		if !done {
			_ = tx.Rollback()
		}
	}()

	if _, err := purger.DeleteAll(ctx, tx, ids, func(res purge.DeleteResult) {
		r.Printf("Deleted %d records from %s\n", res.Deleted, res.Table)
	}); err != nil {
		return err
	}

	if prompter.Confirm("\nDo you want to commit these changes? (yes/no): ") {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit: %w", err)
		}
		done = true
		r.Success("Changes committed successfully!")
	} else {
		if err := tx.Rollback(); err != nil {
			return fmt.Errorf("failed to roll back: %w", err)
		}
		done = true
		r.Println("Changes rolled back.")
	}

	// Final counts are read outside the transaction, so they reflect
	// committed state: zero after a commit, unchanged after a rollback.
	final, err := purger.CountRelated(ctx, cmdCtx.DB, ids)
	if err != nil {
		return err
	}
	r.Heading("Final record counts:")
	renderCounts(r, final)

	return nil
}

// resolveState picks the target state from the flag override or config and
// validates it.
func resolveState(cfg *config.Config, override string) (string, error) {
	state := cfg.State
	if override != "" {
		state = strings.ToUpper(strings.TrimSpace(override))
	}
	if !config.ValidStateCode(state) {
		return "", fmt.Errorf("state must be a two-letter US state code, got %q", state)
	}
	return state, nil
}
