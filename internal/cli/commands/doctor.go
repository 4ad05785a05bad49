package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mailhaus/housekeep/internal/purge"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check database connectivity and schema health",
		Long: `Verify that the mailhaus database is reachable and carries the schema
housekeep depends on: every table of the deletion plan must exist, and the
change-tracking triggers on property_owners and properties must be present.`,
		Example: `  housekeep doctor`,
		RunE:    runDoctor,
	}
}

// doctorCheck is a single named health check.
type doctorCheck struct {
	Group string
	Name  string
	Run   func(ctx context.Context, db *sql.DB) error
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cmdCtx, cleanup, err := NewConnectedContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	r := cmdCtx.Renderer

	checks := buildDoctorChecks()

	titler := cases.Title(language.English)
	var failed int
	lastGroup := ""
	for _, check := range checks {
		if check.Group != lastGroup {
			r.Heading(titler.String(check.Group))
			lastGroup = check.Group
		}
		if err := check.Run(ctx, cmdCtx.DB); err != nil {
			r.Printf("%s: FAIL (%v)\n", check.Name, err)
			failed++
			continue
		}
		r.Printf("%s: OK\n", check.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	r.Success(fmt.Sprintf("All %d checks passed", len(checks)))
	return nil
}

func buildDoctorChecks() []doctorCheck {
	checks := []doctorCheck{
		{
			Group: "connection",
			Name:  "ping",
			Run: func(ctx context.Context, db *sql.DB) error {
				return db.PingContext(ctx)
			},
		},
	}

	for _, tbl := range purge.Plan {
		checks = append(checks, doctorCheck{
			Group: "tables",
			Name:  tbl.Name,
			Run:   tableExistsCheck(tbl.Name),
		})
	}

	for _, tbl := range purge.TriggerTables() {
		checks = append(checks, doctorCheck{
			Group: "triggers",
			Name:  tbl.Trigger,
			Run:   triggerExistsCheck(tbl.Name, tbl.Trigger),
		})
	}

	return checks
}

func tableExistsCheck(table string) func(ctx context.Context, db *sql.DB) error {
	return func(ctx context.Context, db *sql.DB) error {
		const query = `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1
			)`
		var exists bool
		if err := db.QueryRowContext(ctx, query, table).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check table %s: %w", table, err)
		}
		if !exists {
			return fmt.Errorf("table %s does not exist", table)
		}
		return nil
	}
}

func triggerExistsCheck(table, trigger string) func(ctx context.Context, db *sql.DB) error {
	return func(ctx context.Context, db *sql.DB) error {
		const query = `
			SELECT EXISTS (
				SELECT 1
				FROM pg_trigger t
				JOIN pg_class c ON c.oid = t.tgrelid
				WHERE c.relname = $1 AND t.tgname = $2 AND NOT t.tgisinternal
			)`
		var exists bool
		if err := db.QueryRowContext(ctx, query, table, trigger).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check trigger %s: %w", trigger, err)
		}
		if !exists {
			return fmt.Errorf("trigger %s is missing on %s", trigger, table)
		}
		return nil
	}
}
