package config

// Python holds interpreter configuration used when provisioning the environment
type Python struct {
	// Interpreter is the binary 'venvup init' invokes to create the venv.
	// Empty means auto-detect (python3, then python).
	Interpreter string `koanf:"interpreter" toml:"interpreter"`
}

// Venv holds virtual environment layout configuration
type Venv struct {
	// Dir is the venv directory name relative to the project root.
	// The activation marker lives at <Dir>/bin/activate (Scripts on Windows).
	Dir string `koanf:"dir" toml:"dir"`
}

// Pip holds installer invocation configuration.
// NOTE: The package list itself is NOT configurable. It is compiled into
// pkg/manifest so the install sequence stays static and reviewable.
type Pip struct {
	// Bin is the installer binary, resolved through the activated PATH.
	Bin string `koanf:"bin" toml:"bin"`
	// ExtraArgs are appended to every install invocation after the package name.
	ExtraArgs []string `koanf:"extra_args" toml:"extra_args"`
}

// Install holds install sequencing configuration
type Install struct {
	// FailFast stops at the first failing package instead of running the
	// full sequence. The default (false) matches the historical behavior:
	// every package gets its invocation regardless of earlier failures.
	FailFast bool `koanf:"fail_fast" toml:"fail_fast"`
}

// Config is the root configuration structure
type Config struct {
	Python  Python  `koanf:"python" toml:"python"`
	Venv    Venv    `koanf:"venv" toml:"venv"`
	Pip     Pip     `koanf:"pip" toml:"pip"`
	Install Install `koanf:"install" toml:"install"`
}

// Default returns the built-in configuration, parsed from the embedded
// defaults file. Errors in the embedded file are programmer errors and
// fall back to hardcoded values.
func Default() *Config {
	cfg, err := loadDefaults()
	if err != nil {
		return &Config{
			Venv: Venv{Dir: "venv"},
			Pip:  Pip{Bin: "pip"},
		}
	}
	return cfg
}
