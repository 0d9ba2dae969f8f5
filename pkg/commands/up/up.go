// Package up implements the install sequence: activate the project's
// virtual environment and run the installer once per manifest package,
// in manifest order.
package up

import (
	"context"

	"github.com/mihaiBront/venvup/pkg/config"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/manifest"
	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/opexec"
	"github.com/mihaiBront/venvup/pkg/paths"
	"github.com/mihaiBront/venvup/pkg/pip"
	"github.com/mihaiBront/venvup/pkg/venv"
)

// MsgEnvMissing is the diagnostic emitted when the activation marker is
// absent. A missing environment is an expected state, not an error: the
// run still succeeds and nothing is installed.
const MsgEnvMissing = "virtual environment does not exist"

// Options defines the options for the Up command.
type Options struct {
	// ProjectRoot is the directory the venv path is resolved against.
	ProjectRoot string
	// Config overrides the loaded configuration. Nil means defaults.
	Config *config.Config
	// Paths locates the directories file operations are confined to.
	// Nil means derive from ProjectRoot.
	Paths paths.Paths
	// DryRun logs the install sequence without invoking the installer.
	DryRun bool
	// FailFast stops the sequence at the first failing package. The
	// default runs every package regardless of earlier failures.
	FailFast bool
}

// Result holds the result of the Up command.
type Result struct {
	// Env is the environment the command resolved.
	Env *venv.Env
	// EnvExists reports whether the activation marker was found. When
	// false nothing was installed and Outcomes is empty.
	EnvExists bool
	// Outcomes holds one entry per install invocation, in manifest order.
	Outcomes []operations.Outcome
	// DryRun echoes Options.DryRun.
	DryRun bool
}

// ExitCode returns the status the process should exit with: the final
// install invocation's exit status, or 0 when nothing ran. Invocations
// that never spawned carry no status and map to 1.
func (r *Result) ExitCode() int {
	code := operations.LastExitCode(r.Outcomes)
	if code < 0 {
		return 1
	}
	return code
}

// InstallOperations builds one installer invocation per manifest package.
// The installer binary is resolved through PATH at execution time, so an
// activated environment supplies its own pip.
func InstallOperations(cfg *config.Config) []operations.Operation {
	names := manifest.Names()
	ops := make([]operations.Operation, 0, len(names))
	for _, name := range names {
		ops = append(ops, operations.Operation{
			Type:        operations.OperationExecute,
			Command:     cfg.Pip.Bin,
			Args:        pip.InstallArgs(name, cfg.Pip.ExtraArgs),
			Description: "Install " + name,
			Status:      operations.StatusReady,
		})
	}
	return ops
}

// Run executes the install sequence for the project environment.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.up")
	log.Debug().Str("command", "Up").Str("projectRoot", opts.ProjectRoot).Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	env := venv.New(opts.ProjectRoot, cfg.Venv.Dir)
	result := &Result{Env: env, DryRun: opts.DryRun}

	if !env.Exists() {
		log.Info().
			Str("marker", env.ActivateScript()).
			Msg("Activation marker not found, nothing to install")
		return result, nil
	}
	result.EnvExists = true

	restore, err := env.Activate()
	if err != nil {
		return nil, err
	}
	defer restore()

	p := opts.Paths
	if p == nil {
		p, err = paths.New(opts.ProjectRoot)
		if err != nil {
			return nil, err
		}
	}

	executor := opexec.NewCombinedExecutor(opts.DryRun, p).WithFailFast(opts.FailFast)
	outcomes, err := executor.ExecuteOperations(ctx, InstallOperations(cfg))
	if err != nil {
		return nil, err
	}
	result.Outcomes = outcomes

	log.Info().
		Str("command", "Up").
		Int("packages", len(outcomes)).
		Int("failed", operations.FailedCount(outcomes)).
		Msg("Command finished")
	return result, nil
}
