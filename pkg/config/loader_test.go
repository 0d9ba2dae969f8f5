package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaiBront/venvup/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Run("no project config uses defaults", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "venv", cfg.Venv.Dir)
		assert.Equal(t, "pip", cfg.Pip.Bin)
		assert.False(t, cfg.Install.FailFast)
	})

	t.Run("project config overrides defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
[venv]
dir = ".venv"

[pip]
extra_args = ["--no-cache-dir"]

[install]
fail_fast = true
`
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".venvup.toml"), []byte(content), 0644))

		cfg, err := Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, ".venv", cfg.Venv.Dir)
		assert.Equal(t, []string{"--no-cache-dir"}, cfg.Pip.ExtraArgs)
		assert.True(t, cfg.Install.FailFast)
		// Untouched sections keep their defaults
		assert.Equal(t, "pip", cfg.Pip.Bin)
	})

	t.Run("partial section keeps sibling defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
[pip]
bin = "pip3"
`
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "venvup.toml"), []byte(content), 0644))

		cfg, err := Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "pip3", cfg.Pip.Bin)
		assert.Equal(t, "venv", cfg.Venv.Dir)
	})

	t.Run("environment overrides file and defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".venvup.toml"), []byte("[pip]\nbin = \"pip3\"\n"), 0644))

		t.Setenv("VENVUP_PIP_BIN", "pip3.12")
		t.Setenv("VENVUP_VENV_DIR", ".venv")
		t.Setenv("VENVUP_INSTALL_FAIL_FAST", "true")

		cfg, err := Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "pip3.12", cfg.Pip.Bin)
		assert.Equal(t, ".venv", cfg.Venv.Dir)
		assert.True(t, cfg.Install.FailFast)
	})

	t.Run("env list values split on commas", func(t *testing.T) {
		t.Setenv("VENVUP_PIP_EXTRA_ARGS", "--quiet,--no-input")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, []string{"--quiet", "--no-input"}, cfg.Pip.ExtraArgs)
	})

	t.Run("unrelated venvup variables are ignored", func(t *testing.T) {
		t.Setenv("VENVUP_ROOT", "/somewhere")
		t.Setenv("VENVUP_DATA_DIR", "/elsewhere")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "venv", cfg.Venv.Dir)
		assert.Equal(t, "pip", cfg.Pip.Bin)
	})

	t.Run("invalid toml in project config", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".venvup.toml"), []byte("[invalid toml"), 0644))

		cfg, err := Load(tmpDir)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestEnvKeyToConfigKey(t *testing.T) {
	assert.Equal(t, "pip.bin", envKeyToConfigKey("VENVUP_PIP_BIN"))
	assert.Equal(t, "venv.dir", envKeyToConfigKey("VENVUP_VENV_DIR"))
	assert.Equal(t, "install.fail_fast", envKeyToConfigKey("VENVUP_INSTALL_FAIL_FAST"))
	assert.Equal(t, "pip.extra_args", envKeyToConfigKey("VENVUP_PIP_EXTRA_ARGS"))
}

func TestFindRootConfig(t *testing.T) {
	t.Run("prefers dotted name", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".venvup.toml"), []byte(""), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "venvup.toml"), []byte(""), 0644))

		assert.Equal(t, filepath.Join(tmpDir, ".venvup.toml"), FindRootConfig(tmpDir))
	})

	t.Run("falls back to plain name", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "venvup.toml"), []byte(""), 0644))

		assert.Equal(t, filepath.Join(tmpDir, "venvup.toml"), FindRootConfig(tmpDir))
	})

	t.Run("empty when no config exists", func(t *testing.T) {
		assert.Equal(t, "", FindRootConfig(t.TempDir()))
	})
}

func TestParseFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, ".venvup.toml")
		require.NoError(t, os.WriteFile(path, []byte("[venv]\ndir = \"env\"\n"), 0644))

		cfg, err := ParseFile(path)
		require.NoError(t, err)
		assert.Equal(t, "env", cfg.Venv.Dir)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := ParseFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("invalid toml", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, ".venvup.toml")
		require.NoError(t, os.WriteFile(path, []byte("pip = ["), 0644))

		_, err := ParseFile(path)
		assert.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(tmpDir, "absent")))
	assert.False(t, FileExists(tmpDir), "directories do not count")
}
