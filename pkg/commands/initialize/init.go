// Package initialize implements environment provisioning: create the
// project's virtual environment and scaffold the project configuration.
package initialize

import (
	"context"
	"path/filepath"

	"github.com/mihaiBront/venvup/pkg/config"
	"github.com/mihaiBront/venvup/pkg/errors"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/opexec"
	"github.com/mihaiBront/venvup/pkg/paths"
	"github.com/mihaiBront/venvup/pkg/venv"
)

// Options defines the options for the Init command.
type Options struct {
	// ProjectRoot is the directory the venv is created under.
	ProjectRoot string
	// Config overrides the loaded configuration. Nil means defaults.
	Config *config.Config
	// Paths locates the directories file operations are confined to.
	// Nil means derive from ProjectRoot.
	Paths paths.Paths
	// DryRun logs the provisioning steps without running them.
	DryRun bool
}

// Result holds the result of the Init command.
type Result struct {
	// Env is the environment that was created.
	Env *venv.Env
	// Interpreter is the Python binary used to create it.
	Interpreter string
	// ConfigPath is the scaffolded config file, or empty when the
	// project already had one.
	ConfigPath string
	// Outcomes holds the provisioning command results.
	Outcomes []operations.Outcome
	// DryRun echoes Options.DryRun.
	DryRun bool
}

// Run creates the project virtual environment. A config scaffold is
// written alongside it unless the project already carries one.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.initialize")
	log.Debug().Str("command", "Init").Str("projectRoot", opts.ProjectRoot).Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	env := venv.New(opts.ProjectRoot, cfg.Venv.Dir)
	if env.Exists() {
		return nil, errors.Newf(errors.ErrEnvExists,
			"virtual environment already exists at %s", env.Path())
	}

	interpreter, err := venv.FindInterpreter(cfg.Python.Interpreter)
	if err != nil {
		return nil, err
	}

	result := &Result{Env: env, Interpreter: interpreter, DryRun: opts.DryRun}

	var ops []operations.Operation
	if existing := config.FindRootConfig(opts.ProjectRoot); existing == "" {
		result.ConfigPath = filepath.Join(opts.ProjectRoot, config.DefaultFileName)
		ops = append(ops, operations.Operation{
			Type:        operations.OperationWriteFile,
			Target:      result.ConfigPath,
			Content:     config.GenerateConfigContent(),
			Description: "Scaffold project configuration",
			Status:      operations.StatusReady,
		})
	} else {
		log.Debug().Str("path", existing).Msg("Project config already present, not scaffolding")
	}

	ops = append(ops, operations.Operation{
		Type:        operations.OperationExecute,
		Command:     interpreter,
		Args:        []string{"-m", "venv", cfg.Venv.Dir},
		WorkingDir:  opts.ProjectRoot,
		Description: "Create virtual environment " + cfg.Venv.Dir,
		Status:      operations.StatusReady,
	})

	p := opts.Paths
	if p == nil {
		p, err = paths.New(opts.ProjectRoot)
		if err != nil {
			return nil, err
		}
	}

	executor := opexec.NewCombinedExecutor(opts.DryRun, p)
	outcomes, err := executor.ExecuteOperations(ctx, ops)
	if err != nil {
		return nil, err
	}
	result.Outcomes = outcomes

	if code := operations.LastExitCode(outcomes); code != 0 && !opts.DryRun {
		return nil, errors.Newf(errors.ErrActionExecute,
			"%s -m venv exited with status %d", interpreter, code)
	}

	log.Info().
		Str("command", "Init").
		Str("path", env.Path()).
		Str("interpreter", interpreter).
		Bool("dry_run", opts.DryRun).
		Msg("Command finished")
	return result, nil
}
