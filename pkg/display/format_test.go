// Test Type: Unit Test
// Description: Tests for output format detection and renderer selection

package display_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaiBront/venvup/pkg/display"
	"github.com/mihaiBront/venvup/pkg/style"
)

// tempOutput returns an open regular file, which never reads as a terminal
func tempOutput(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected display.Format
	}{
		{"", display.FormatAuto},
		{"auto", display.FormatAuto},
		{"term", display.FormatTerminal},
		{"terminal", display.FormatTerminal},
		{"text", display.FormatText},
		{"plain", display.FormatText},
		{"json", display.FormatJSON},
		{"JSON", display.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := display.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := display.ParseFormat("xml")
		assert.Error(t, err)
	})
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", display.FormatAuto.String())
	assert.Equal(t, "term", display.FormatTerminal.String())
	assert.Equal(t, "text", display.FormatText.String())
	assert.Equal(t, "json", display.FormatJSON.String())
}

func TestDetectFormat_NonTerminal(t *testing.T) {
	// A regular file is not a terminal, so detection falls back to text
	assert.Equal(t, display.FormatText, display.DetectFormat(tempOutput(t)))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, display.FormatText, display.DetectFormat(tempOutput(t)))
}

func TestNewRenderer(t *testing.T) {
	out := tempOutput(t)

	assert.IsType(t, &display.JSONRenderer{}, display.NewRenderer(display.FormatJSON, out))
	assert.IsType(t, &display.TextRenderer{}, display.NewRenderer(display.FormatText, out))
	assert.IsType(t, &display.RichRenderer{}, display.NewRenderer(display.FormatTerminal, out))

	// Auto against a regular file resolves to plain text
	assert.IsType(t, &display.TextRenderer{}, display.NewRenderer(display.FormatAuto, out))
}

func TestJSONRenderer(t *testing.T) {
	result := display.CommandResult{
		Command: "up",
		Packages: []display.PackageResult{
			{Name: "numpy", Status: style.StatusSuccess, Message: "installed"},
			{Name: "pandas", Status: style.StatusError, Message: "exit status 1", ExitCode: 1},
		},
		Summary: display.Summary{Total: 2, Succeeded: 1, Failed: 1},
	}

	output := display.NewJSONRenderer().RenderCommandResult(result)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))

	assert.Equal(t, "up", decoded["command"])
	packages, ok := decoded["packages"].([]any)
	require.True(t, ok)
	require.Len(t, packages, 2)

	first, ok := packages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "numpy", first["name"])
	assert.Equal(t, "success", first["status"])
}
