// Package status reports the state of the project environment and of the
// manifest packages inside it.
package status

import (
	"context"

	"github.com/mihaiBront/venvup/pkg/config"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/manifest"
	"github.com/mihaiBront/venvup/pkg/pip"
	"github.com/mihaiBront/venvup/pkg/venv"
)

// PackageStatus describes one manifest package inside the environment.
type PackageStatus struct {
	// Name is the manifest package name.
	Name string
	// Installed reports whether the installer knows the package.
	Installed bool
	// Version is the installed version, empty when not installed.
	Version string
}

// Options defines the options for the Status command.
type Options struct {
	// ProjectRoot is the directory the venv path is resolved against.
	ProjectRoot string
	// Config overrides the loaded configuration. Nil means defaults.
	Config *config.Config
}

// Result holds the result of the Status command.
type Result struct {
	// Env is the environment the command resolved.
	Env *venv.Env
	// EnvExists reports whether the activation marker was found.
	EnvExists bool
	// Metadata is the environment's pyvenv.cfg content, nil when
	// missing or unreadable.
	Metadata *venv.Metadata
	// ConfigPath is the project config file, empty when none.
	ConfigPath string
	// Packages holds one entry per manifest package, in manifest order.
	// Empty when the environment does not exist.
	Packages []PackageStatus
	// Missing counts the manifest packages not yet installed.
	Missing int
}

// Run inspects the project environment and compares its installed
// distributions against the manifest.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Str("projectRoot", opts.ProjectRoot).Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	env := venv.New(opts.ProjectRoot, cfg.Venv.Dir)
	result := &Result{
		Env:        env,
		ConfigPath: config.FindRootConfig(opts.ProjectRoot),
	}

	if !env.Exists() {
		log.Debug().Str("marker", env.ActivateScript()).Msg("Activation marker not found")
		return result, nil
	}
	result.EnvExists = true

	if metadata, err := env.ReadMetadata(); err == nil {
		result.Metadata = metadata
	} else {
		log.Debug().Err(err).Msg("Environment metadata unreadable")
	}

	restore, err := env.Activate()
	if err != nil {
		return nil, err
	}
	defer restore()

	dists, err := pip.List(ctx, cfg.Pip.Bin)
	if err != nil {
		return nil, err
	}
	installed := pip.InstalledSet(dists)

	for _, name := range manifest.Names() {
		entry := PackageStatus{Name: name}
		if dist, ok := installed[pip.NormalizeName(name)]; ok {
			entry.Installed = true
			entry.Version = dist.Version
		} else {
			result.Missing++
		}
		result.Packages = append(result.Packages, entry)
	}

	log.Info().
		Str("command", "Status").
		Int("packages", len(result.Packages)).
		Int("missing", result.Missing).
		Msg("Command finished")
	return result, nil
}
