package config

// Global configuration instance
var globalConfig *Config

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalConfig = cfg
}

// Get returns the current configuration
func Get() *Config {
	if globalConfig == nil {
		Initialize(nil)
	}
	return globalConfig
}

// GetPython returns interpreter configuration
func GetPython() Python {
	return Get().Python
}

// GetVenv returns virtual environment configuration
func GetVenv() Venv {
	return Get().Venv
}

// GetPip returns installer configuration
func GetPip() Pip {
	return Get().Pip
}

// GetInstall returns install sequencing configuration
func GetInstall() Install {
	return Get().Install
}
