package opexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/mihaiBront/venvup/pkg/errors"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/operations"
)

// CommandExecutor handles execution of command operations
type CommandExecutor struct {
	logger zerolog.Logger
	dryRun bool
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(dryRun bool) *CommandExecutor {
	return &CommandExecutor{
		logger: logging.GetLogger("opexec.command"),
		dryRun: dryRun,
	}
}

// ExecuteSequence runs every execute operation in order, one at a time,
// each to completion before the next begins. Failures do not stop the
// sequence unless failFast is set; every operation gets an outcome either
// way, failed or skipped.
func (e *CommandExecutor) ExecuteSequence(ctx context.Context, ops []operations.Operation, failFast bool) []operations.Outcome {
	outcomes := make([]operations.Outcome, 0, len(ops))
	halted := false

	for _, op := range ops {
		if op.Type != operations.OperationExecute {
			continue
		}

		if op.Status != operations.StatusReady || halted {
			e.logger.Debug().
				Str("command", op.Command).
				Str("status", string(op.Status)).
				Bool("halted", halted).
				Msg("Skipping operation")
			skipped := op
			skipped.Status = operations.StatusSkipped
			outcomes = append(outcomes, operations.Outcome{Operation: skipped})
			continue
		}

		outcome := e.executeOperation(ctx, op)
		outcomes = append(outcomes, outcome)

		if !outcome.Success() && failFast {
			e.logger.Warn().
				Str("command", op.Command).
				Int("exitCode", outcome.ExitCode).
				Msg("Halting sequence after failure")
			halted = true
		}
	}

	return outcomes
}

// executeOperation runs a single command operation
func (e *CommandExecutor) executeOperation(ctx context.Context, op operations.Operation) operations.Outcome {
	if op.Command == "" {
		return operations.Outcome{
			Operation: op,
			Err:       errors.New(errors.ErrInvalidInput, "execute operation requires command"),
		}
	}

	e.logger.Info().
		Str("command", op.Command).
		Strs("args", op.Args).
		Str("workingDir", op.WorkingDir).
		Str("description", op.Description).
		Msg("Executing command")

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - command would be executed")
		return operations.Outcome{Operation: op}
	}

	if op.WorkingDir != "" {
		if _, err := os.Stat(op.WorkingDir); os.IsNotExist(err) {
			return operations.Outcome{
				Operation: op,
				Err: errors.Newf(errors.ErrFileAccess,
					"working directory does not exist: %s", op.WorkingDir),
			}
		}
	}

	cmd := exec.CommandContext(ctx, op.Command, op.Args...)
	cmd.Dir = op.WorkingDir

	// Start with the current environment so an activated venv carries
	// over into the child
	cmd.Env = os.Environ()
	for key, value := range op.EnvironmentVars {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	// Capture output
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	// Display output to user
	if stdout.Len() > 0 {
		fmt.Print(stdout.String())

		e.logger.Debug().
			Str("output", stdout.String()).
			Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		fmt.Fprint(os.Stderr, stderr.String())

		e.logger.Debug().
			Str("output", stderr.String()).
			Msg("Command stderr")
	}

	outcome := operations.Outcome{
		Operation: op,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Duration:  duration,
	}

	if err != nil {
		outcome.ExitCode = exitCode(err)
		outcome.Err = errors.Wrapf(err, errors.ErrActionExecute,
			"failed to execute command: %s", op.Command)

		e.logger.Error().
			Err(err).
			Str("command", op.Command).
			Strs("args", op.Args).
			Int("exitCode", outcome.ExitCode).
			Msg("Command execution failed")

		return outcome
	}

	e.logger.Info().
		Str("command", op.Command).
		Dur("duration", duration).
		Msg("Command executed successfully")

	return outcome
}

// exitCode extracts the child's exit status. Spawn failures, where no
// status exists, map to -1.
func exitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}
