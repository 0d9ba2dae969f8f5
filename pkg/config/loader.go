package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mihaiBront/venvup/pkg/errors"
)

// DefaultFileName is the config file written into the project root by
// the init and genconfig commands.
const DefaultFileName = ".venvup.toml"

// EnvPrefix marks the environment variables that override config keys,
// e.g. VENVUP_PIP_BIN for pip.bin.
const EnvPrefix = "VENVUP_"

// Config file names tried in the project root, first match wins
var rootConfigNames = []string{DefaultFileName, "venvup.toml"}

// baseConfig is the programmatic floor under the embedded defaults:
// these values hold even when defaults.toml loses a key.
func baseConfig() map[string]interface{} {
	return map[string]interface{}{
		"python.interpreter": "",
		"venv.dir":           "venv",
		"pip.bin":            "pip",
		"pip.extra_args":     []string{},
		"install.fail_fast":  false,
	}
}

// envKeyToConfigKey maps VENVUP_PIP_BIN to pip.bin. Only the first
// underscore becomes a separator so keys like install.fail_fast survive
// the round trip. Variables that map to no config key fall away during
// unmarshalling, which keeps VENVUP_ROOT and friends out of the tree.
func envKeyToConfigKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Load merges the configuration layers and unmarshals the result into a
// Config. Later layers win: programmatic base, embedded defaults, the
// project-root config file, then VENVUP_* environment variables.
// projectRoot: path of the workspace the venv lives under (required).
func Load(projectRoot string) (*Config, error) {
	k := koanf.New(".")

	// 1. Programmatic base
	if err := k.Load(confmap.Provider(baseConfig(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load base config")
	}

	// 2. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 3. Project config, if present
	if path := FindRootConfig(projectRoot); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	// 4. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyToConfigKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	cfg, err := unmarshalConfig(k)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindRootConfig returns the path of the project config file, or "" when
// the project has none. Both the dotted and the plain name are accepted.
func FindRootConfig(projectRoot string) string {
	for _, name := range rootConfigNames {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadDefaults parses only the embedded defaults file
func loadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}
	return unmarshalConfig(k)
}

// unmarshalConfig decodes a loaded koanf tree into a typed Config
func unmarshalConfig(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
