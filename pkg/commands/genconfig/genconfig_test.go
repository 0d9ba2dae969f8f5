// Test Type: Unit Test
// Description: Tests for the genconfig command - config generation and write handling

package genconfig_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaiBront/venvup/pkg/commands/genconfig"
	"github.com/mihaiBront/venvup/pkg/config"
	"github.com/mihaiBront/venvup/pkg/paths"
	"github.com/mihaiBront/venvup/pkg/testutil"
)

func testOptions(t *testing.T) (genconfig.Options, string) {
	t.Helper()

	root := t.TempDir()
	t.Setenv(paths.EnvDataDir, filepath.Join(root, "xdg-data"))
	t.Setenv(paths.EnvConfigDir, filepath.Join(root, "xdg-config"))
	t.Setenv(paths.EnvStateDir, filepath.Join(root, "xdg-state"))

	p, err := paths.New(root)
	require.NoError(t, err)

	return genconfig.Options{ProjectRoot: root, Paths: p}, root
}

func TestRun_ContentOnly(t *testing.T) {
	opts, root := testOptions(t)

	result, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.GenerateConfigContent(), result.ConfigContent)
	assert.Empty(t, result.TargetPath)
	assert.False(t, result.Written)
	testutil.AssertNoFile(t, filepath.Join(root, config.DefaultFileName))
}

func TestRun_WritesFreshConfig(t *testing.T) {
	testutil.SkipOnWindows(t)
	opts, root := testOptions(t)
	opts.Write = true

	result, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)

	expected := filepath.Join(root, config.DefaultFileName)
	assert.Equal(t, expected, result.TargetPath)
	assert.True(t, result.Written)
	assert.Empty(t, result.BackupPath)

	content := testutil.ReadFile(t, expected)
	assert.Contains(t, content, "[pip]")
	assert.Contains(t, content, `# bin = "pip"`)
}

func TestRun_ConflictWithoutForce(t *testing.T) {
	opts, root := testOptions(t)
	opts.Write = true

	existing := testutil.CreateFile(t, root, "venvup.toml", "[pip]\nbin = \"pip3\"\n")

	result, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.Conflicted)
	assert.False(t, result.Written)
	assert.Equal(t, existing, result.TargetPath)

	// The existing file is untouched
	assert.Equal(t, "[pip]\nbin = \"pip3\"\n", testutil.ReadFile(t, existing))
}

func TestRun_ForceBacksUpAndReplaces(t *testing.T) {
	testutil.SkipOnWindows(t)
	opts, root := testOptions(t)
	opts.Write = true
	opts.Force = true

	existing := testutil.CreateFile(t, root, "venvup.toml", "[pip]\nbin = \"pip3\"\n")

	result, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, existing+genconfig.BackupSuffix, result.BackupPath)

	// Old content moved aside, scaffold in place
	assert.Equal(t, "[pip]\nbin = \"pip3\"\n", testutil.ReadFile(t, result.BackupPath))
	assert.Contains(t, testutil.ReadFile(t, existing), `# bin = "pip"`)
}

func TestRun_ForceTwice(t *testing.T) {
	testutil.SkipOnWindows(t)
	opts, root := testOptions(t)
	opts.Write = true
	opts.Force = true

	testutil.CreateFile(t, root, "venvup.toml", "first\n")

	_, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)

	// A second forced run replaces both the config and the stale backup
	result, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Contains(t, testutil.ReadFile(t, result.BackupPath), "# bin")
}

func TestRun_DryRun(t *testing.T) {
	opts, root := testOptions(t)
	opts.Write = true
	opts.DryRun = true

	result, err := genconfig.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, result.Written)
	testutil.AssertNoFile(t, filepath.Join(root, config.DefaultFileName))
}
