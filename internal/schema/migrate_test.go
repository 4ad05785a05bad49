package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailhaus/housekeep/internal/purge"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMigrationsCoverPlan(t *testing.T) {
	// Every table and trigger the purge plan touches must be provisioned
	// by the embedded migrations.
	var all []byte
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	for _, e := range entries {
		data, err := migrations.ReadFile("migrations/" + e.Name())
		require.NoError(t, err)
		all = append(all, data...)
	}

	ddl := string(all)
	for _, tbl := range purge.Plan {
		assert.Contains(t, ddl, "CREATE TABLE "+tbl.Name, "missing table %s", tbl.Name)
		if tbl.Trigger != "" {
			assert.Contains(t, ddl, "CREATE TRIGGER "+tbl.Trigger, "missing trigger %s", tbl.Trigger)
		}
	}
}
