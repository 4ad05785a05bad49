// Package commands_test provides tests for CLI command creation.
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPurgeCommand(t *testing.T) {
	cmd := NewPurgeCommand()

	assert.Equal(t, "purge", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("state"), "flag \"state\" should exist")
}

func TestNewCountsCommand(t *testing.T) {
	cmd := NewCountsCommand()

	assert.Equal(t, "counts", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("state"), "flag \"state\" should exist")
}

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := NewMigrateCommand()

	assert.Equal(t, "migrate [up|down|status|version]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Contains(t, cmd.ValidArgs, "up")
	assert.Contains(t, cmd.ValidArgs, "status")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("0.1.0")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}
