// Test Type: Unit Test
// Description: Tests for the list command - manifest listing

package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaiBront/venvup/pkg/commands/list"
	"github.com/mihaiBront/venvup/pkg/manifest"
)

func TestPackages(t *testing.T) {
	result := list.Packages()

	require.Len(t, result.Packages, manifest.Count())
	for i, name := range manifest.Names() {
		assert.Equal(t, i+1, result.Packages[i].Position)
		assert.Equal(t, name, result.Packages[i].Name)
	}
}

func TestPackages_SequenceEndpoints(t *testing.T) {
	result := list.Packages()

	require.NotEmpty(t, result.Packages)
	assert.Equal(t, "coloredlogs", result.Packages[0].Name)
	assert.Equal(t, "pyinstaller", result.Packages[len(result.Packages)-1].Name)
}
