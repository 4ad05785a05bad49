// Package purge implements the record purge for properties in a given US
// state: identifying the target property set, counting dependent rows, and
// deleting across the related mailhaus tables in foreign-key order.
package purge

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Property is one row of the properties table, as listed before deletion.
type Property struct {
	ID      int64
	RadarID string
	Address string
	City    string
	State   string
}

// TableCount is the number of rows in one plan table that reference the
// target property set.
type TableCount struct {
	Table string
	Count int64
}

// DeleteResult is the number of rows deleted from one plan table.
type DeleteResult struct {
	Table   string
	Deleted int64
}

// Querier is the read-side subset of *sql.DB and *sql.Tx used for counts.
// Passing a *sql.Tx makes counts observe uncommitted deletes; passing the
// *sql.DB makes them observe committed state only.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Execer is the write-side subset of *sql.Tx used for deletes.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Purger runs the purge steps against the mailhaus database.
type Purger struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a Purger. If logger is nil, a discard logger is used.
func New(db *sql.DB, logger *slog.Logger) *Purger {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Purger{db: db, logger: logger}
}

// FindProperties returns all properties located in the given state. The
// returned set is captured once and reused for all subsequent counts and
// deletes; it is not recomputed after partial deletion.
func (p *Purger) FindProperties(ctx context.Context, state string) ([]Property, error) {
	const query = `
		SELECT property_id, radar_id, property_address, property_city, property_state
		FROM properties
		WHERE property_state = $1`

	p.logger.Debug("finding properties", slog.String("state", state))

	rows, err := p.db.QueryContext(ctx, query, state)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var props []Property
	for rows.Next() {
		var prop Property
		if err := rows.Scan(&prop.ID, &prop.RadarID, &prop.Address, &prop.City, &prop.State); err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		props = append(props, prop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return props, nil
}

// CountRelated counts rows referencing the given property IDs in every plan
// table, in plan order.
func (p *Purger) CountRelated(ctx context.Context, q Querier, ids []int64) ([]TableCount, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty property ID list")
	}

	counts := make([]TableCount, 0, len(Plan))
	for _, t := range Plan {
		//nolint:gosec // table and column names come from the fixed plan
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IN (%s)",
			t.Name, t.FKColumn, placeholders(len(ids)))

		var count int64
		if err := q.QueryRowContext(ctx, query, idArgs(ids)...).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.Name, err)
		}
		counts = append(counts, TableCount{Table: t.Name, Count: count})
	}
	return counts, nil
}

// DeleteAll deletes every row referencing the given property IDs from each
// plan table, in plan order, within the caller's transaction. Tables with a
// change-tracking trigger get the trigger disabled immediately before their
// delete and re-enabled immediately after, so the purge itself does not
// generate history rows. The report callback, when non-nil, is invoked after
// each table's delete.
func (p *Purger) DeleteAll(ctx context.Context, tx Execer, ids []int64, report func(DeleteResult)) ([]DeleteResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty property ID list")
	}

	results := make([]DeleteResult, 0, len(Plan))
	for _, t := range Plan {
		if t.Trigger != "" {
			if err := p.toggleTrigger(ctx, tx, t, "DISABLE"); err != nil {
				return results, err
			}
		}

		//nolint:gosec // table and column names come from the fixed plan
		query := fmt.Sprintf("DELETE FROM %s WHERE %s IN (%s)",
			t.Name, t.FKColumn, placeholders(len(ids)))

		p.logger.Debug("deleting rows", slog.String("table", t.Name))

		res, err := tx.ExecContext(ctx, query, idArgs(ids)...)
		if err != nil {
			return results, fmt.Errorf("failed to delete from %s: %w", t.Name, err)
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return results, fmt.Errorf("failed to read affected rows for %s: %w", t.Name, err)
		}

		result := DeleteResult{Table: t.Name, Deleted: deleted}
		results = append(results, result)
		if report != nil {
			report(result)
		}

		if t.Trigger != "" {
			if err := p.toggleTrigger(ctx, tx, t, "ENABLE"); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func (p *Purger) toggleTrigger(ctx context.Context, tx Execer, t Table, action string) error {
	p.logger.Debug("toggling trigger",
		slog.String("table", t.Name),
		slog.String("trigger", t.Trigger),
		slog.String("action", action))

	//nolint:gosec // table, trigger and action come from the fixed plan
	stmt := fmt.Sprintf("ALTER TABLE %s %s TRIGGER %s", t.Name, action, t.Trigger)
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to %s trigger %s on %s: %w",
			strings.ToLower(action), t.Trigger, t.Name, err)
	}
	return nil
}

// PropertyIDs extracts the IDs from a property list.
func PropertyIDs(props []Property) []int64 {
	ids := make([]int64, len(props))
	for i, prop := range props {
		ids[i] = prop.ID
	}
	return ids
}

// Total sums a count report.
func Total(counts []TableCount) int64 {
	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return total
}

// placeholders renders "$1,$2,...,$n" for an IN clause.
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ",")
}

// idArgs widens the ID list to []any for database/sql.
func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
