package venvup

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsCommand(t *testing.T) {
	// The topics command is a thin wrapper that calls "help topics".
	// The help system itself only comes alive when topic files are
	// found next to the executable, which is not the case under test,
	// so these tests focus on the command structure.

	findTopics := func(t *testing.T) *cobra.Command {
		t.Helper()

		cmd := NewRootCmd()
		for _, c := range cmd.Commands() {
			if c.Name() == "topics" {
				return c
			}
		}
		t.Fatal("topics command should exist")
		return nil
	}

	t.Run("topics command exists and has correct structure", func(t *testing.T) {
		topicsCmd := findTopics(t)

		assert.Equal(t, "topics", topicsCmd.Use)
		assert.Equal(t, MsgTopicsShort, topicsCmd.Short)
		assert.Equal(t, MsgTopicsLong, topicsCmd.Long)
		assert.Equal(t, "misc", topicsCmd.GroupID)
		assert.NotNil(t, topicsCmd.RunE, "topics command should have RunE function")
	})

	t.Run("topics command reports missing help system", func(t *testing.T) {
		// Without topic files next to the test binary the custom help
		// command never gets installed
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"topics"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "help command not found")
	})

	t.Run("topics command has no subcommands or local flags", func(t *testing.T) {
		topicsCmd := findTopics(t)

		assert.Empty(t, topicsCmd.Commands())
		assert.False(t, topicsCmd.HasLocalFlags())
	})
}

func TestTopicsCommandMessages(t *testing.T) {
	assert.NotEmpty(t, MsgTopicsShort)
	assert.NotEmpty(t, MsgTopicsLong)
	assert.NotContains(t, MsgTopicsShort, "\n", "Short description should be single line")
}
