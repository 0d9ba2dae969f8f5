package venv

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mihaiBront/venvup/pkg/errors"
)

// interpreterCandidates are tried in order when no interpreter is configured
var interpreterCandidates = []string{"python3", "python"}

// FindInterpreter resolves the Python interpreter used to provision
// environments. A configured name wins; otherwise the candidates are
// tried against PATH in order.
func FindInterpreter(configured string) (string, error) {
	if configured != "" {
		path, err := exec.LookPath(configured)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrPythonMissing,
				"configured interpreter %s not found in PATH", configured)
		}
		return path, nil
	}

	for _, candidate := range interpreterCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			log.Debug().Str("interpreter", path).Msg("Interpreter detected")
			return path, nil
		}
	}
	return "", errors.New(errors.ErrPythonMissing,
		"no Python interpreter found in PATH (tried python3, python)")
}

// Metadata holds the fields venvup reads from a venv's pyvenv.cfg
type Metadata struct {
	Home    string
	Version string
}

// ReadMetadata parses the pyvenv.cfg the venv module writes next to the
// environment's bin directory. The file is a flat "key = value" list,
// not INI and not TOML, so it gets a hand parser.
func (e *Env) ReadMetadata() (*Metadata, error) {
	path := filepath.Join(e.Path(), "pyvenv.cfg")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	defer func() { _ = f.Close() }()

	meta := &Metadata{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "home":
			meta.Home = value
		case "version", "version_info":
			meta.Version = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to scan %s", path)
	}
	return meta, nil
}
