// Package venv locates and activates Python virtual environments.
//
// An environment is identified by its activation marker, the "activate"
// script the venv module places under bin/ (Scripts/ on Windows).
// Presence of the marker is the sole signal that the environment has
// been provisioned.
package venv

import (
	"path/filepath"
	"runtime"

	"github.com/mihaiBront/venvup/pkg/logging"
)

var log = logging.GetLogger("venv")

// Env represents a virtual environment rooted inside a project
type Env struct {
	projectRoot string
	dir         string
}

// New returns an Env for the given project root and venv directory name.
// dir is relative to the project root, typically "venv".
func New(projectRoot, dir string) *Env {
	return &Env{
		projectRoot: projectRoot,
		dir:         dir,
	}
}

// ProjectRoot returns the project directory the environment belongs to
func (e *Env) ProjectRoot() string {
	return e.projectRoot
}

// Path returns the absolute path of the venv directory
func (e *Env) Path() string {
	return filepath.Join(e.projectRoot, e.dir)
}

// BinDir returns the directory holding the venv's executables.
// "bin" on POSIX systems, "Scripts" on Windows.
func (e *Env) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Path(), "Scripts")
	}
	return filepath.Join(e.Path(), "bin")
}

// ActivateScript returns the path of the activation marker
func (e *Env) ActivateScript() string {
	return filepath.Join(e.BinDir(), "activate")
}

// Python returns the path of the venv's own interpreter
func (e *Env) Python() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(e.BinDir(), name)
}

// Exists reports whether the activation marker is present
func (e *Env) Exists() bool {
	exists := fileExists(e.ActivateScript())
	log.Trace().
		Str("marker", e.ActivateScript()).
		Bool("exists", exists).
		Msg("Checked activation marker")
	return exists
}
