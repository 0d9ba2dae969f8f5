package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mihaiBront/venvup/pkg/errors"
	"github.com/mihaiBront/venvup/pkg/logging"
)

var log = logging.GetLogger("config")

// ParseFile reads and parses a single config file without merging defaults.
// Used to validate an existing file before overwriting it.
func ParseFile(path string) (*Config, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read config file %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse TOML in %s", path)
	}

	logger.Debug().
		Str("venv_dir", cfg.Venv.Dir).
		Str("pip_bin", cfg.Pip.Bin).
		Msg("Config file parsed")

	return &cfg, nil
}

// FileExists is a helper to check if a file exists
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
