// Package paths provides centralized path handling for venvup.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mihaiBront/venvup/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot is the primary environment variable for the workspace location
	EnvProjectRoot = "VENVUP_ROOT"

	// EnvDataDir overrides the XDG data directory for venvup
	EnvDataDir = "VENVUP_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for venvup
	EnvConfigDir = "VENVUP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for venvup
	EnvStateDir = "VENVUP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for venvup-specific files
	AppDirName = "venvup"

	// ShellDir is the subdirectory of the data dir holding shell helpers
	ShellDir = "shell"

	// LogFileName is the name of the log file
	LogFileName = "venvup.log"
)

// Paths provides centralized path management for venvup
type Paths interface {
	// ProjectRoot returns the workspace root the venv lives under
	ProjectRoot() string
	// UsedFallback reports whether the root fell back to the working directory
	UsedFallback() bool
	// DataDir returns the venvup data directory
	DataDir() string
	// ConfigDir returns the venvup config directory
	ConfigDir() string
	// StateDir returns the venvup state directory
	StateDir() string
	// ShellDir returns the directory shell helper scripts are installed to
	ShellDir() string
	// LogFilePath returns the path of the log file
	LogFilePath() string
}

type paths struct {
	projectRoot  string
	xdgData      string
	xdgConfig    string
	xdgState     string
	usedFallback bool
}

// New creates a new Paths instance with the given project root.
// If projectRoot is empty, it will be determined from environment variables
// or defaults.
func New(projectRoot string) (Paths, error) {
	p := &paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = expandHome(projectRoot)
		p.usedFallback = false
	}

	// Ensure the project root is absolute
	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// State directory - check XDG_STATE_HOME manually for parity with pkg/logging
	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.xdgState = filepath.Join(stateHome, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

// findProjectRoot determines the workspace root using the following priority:
// 1. VENVUP_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The function returns:
// - string: The resolved project root path
// - bool: Whether the current working directory was used as fallback
// - error: Any error that occurred during resolution
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ProjectRoot returns the workspace root the venv lives under
func (p *paths) ProjectRoot() string {
	return p.projectRoot
}

// UsedFallback reports whether the root fell back to the working directory
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// DataDir returns the venvup data directory
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the venvup config directory
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the venvup state directory
func (p *paths) StateDir() string {
	return p.xdgState
}

// ShellDir returns the directory shell helper scripts are installed to
func (p *paths) ShellDir() string {
	return filepath.Join(p.xdgData, ShellDir)
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
