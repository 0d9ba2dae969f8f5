package venv

import (
	"os"

	"github.com/mihaiBront/venvup/pkg/errors"
)

// Activate applies the environment mutations the venv's activate script
// would perform: VIRTUAL_ENV points at the venv, its bin directory is
// prepended to PATH, and PYTHONHOME is cleared so the venv's interpreter
// resolves its own stdlib. The mutations apply to this process and are
// inherited by every child it spawns.
//
// The returned restore function undoes the mutations.
func (e *Env) Activate() (func(), error) {
	if !e.Exists() {
		return nil, errors.Newf(errors.ErrEnvMissing,
			"no activation marker at %s", e.ActivateScript())
	}

	prevVirtualEnv, hadVirtualEnv := os.LookupEnv("VIRTUAL_ENV")
	prevPath, hadPath := os.LookupEnv("PATH")
	prevPythonHome, hadPythonHome := os.LookupEnv("PYTHONHOME")

	if err := os.Setenv("VIRTUAL_ENV", e.Path()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to set VIRTUAL_ENV")
	}
	newPath := e.BinDir()
	if prevPath != "" {
		newPath += string(os.PathListSeparator) + prevPath
	}
	if err := os.Setenv("PATH", newPath); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to update PATH")
	}
	if hadPythonHome {
		if err := os.Unsetenv("PYTHONHOME"); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to clear PYTHONHOME")
		}
	}

	log.Info().
		Str("venv", e.Path()).
		Str("binDir", e.BinDir()).
		Msg("Virtual environment activated")

	restore := func() {
		restoreEnv("VIRTUAL_ENV", prevVirtualEnv, hadVirtualEnv)
		restoreEnv("PATH", prevPath, hadPath)
		restoreEnv("PYTHONHOME", prevPythonHome, hadPythonHome)
	}
	return restore, nil
}

func restoreEnv(key, value string, existed bool) {
	if existed {
		_ = os.Setenv(key, value)
	} else {
		_ = os.Unsetenv(key)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
