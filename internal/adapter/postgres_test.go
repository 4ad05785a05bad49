package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name: "basic connection",
			config: Config{
				Host:     "localhost",
				Port:     5432,
				Database: "mailhaus",
				Username: "user",
				Password: "pass",
			},
			expected: "host=localhost port=5432 dbname=mailhaus sslmode=require user=user password=pass",
		},
		{
			name: "with custom sslmode",
			config: Config{
				Host:     "db.example.com",
				Port:     5432,
				Database: "mailhaus",
				Username: "admin",
				SSLMode:  "disable",
			},
			expected: "host=db.example.com port=5432 dbname=mailhaus sslmode=disable user=admin",
		},
		{
			name: "defaults",
			config: Config{
				Database: "mailhaus",
			},
			expected: "host=localhost port=5432 dbname=mailhaus sslmode=require",
		},
		{
			name: "custom port",
			config: Config{
				Host:     "pg.internal",
				Port:     5433,
				Database: "mailhaus_dev",
				Username: "tester",
			},
			expected: "host=pg.internal port=5433 dbname=mailhaus_dev sslmode=require user=tester",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := buildPostgresDSN(tt.config)
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestPostgresAdapter_DialectName(t *testing.T) {
	a := NewPostgresAdapter(nil)
	assert.Equal(t, "postgres", a.DialectName())
}

func TestPostgresAdapter_NotConnected(t *testing.T) {
	a := NewPostgresAdapter(nil)
	assert.False(t, a.IsConnected())

	_, err := a.Handle()
	assert.ErrorContains(t, err, "database connection not established")

	// Close without a connection is a no-op.
	assert.NoError(t, a.Close())
}
