package opexec

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mihaiBront/venvup/pkg/errors"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/paths"
)

// CombinedExecutor handles both file system and command operations in the
// correct order: directories, then backups, then writes, then commands.
type CombinedExecutor struct {
	logger          zerolog.Logger
	dryRun          bool
	failFast        bool
	synthfsExecutor *SynthfsExecutor
	commandExecutor *CommandExecutor
}

// NewCombinedExecutor creates a new combined executor
func NewCombinedExecutor(dryRun bool, p paths.Paths) *CombinedExecutor {
	return &CombinedExecutor{
		logger:          logging.GetLogger("opexec.combined"),
		dryRun:          dryRun,
		synthfsExecutor: NewSynthfsExecutor(dryRun, p),
		commandExecutor: NewCommandExecutor(dryRun),
	}
}

// WithFailFast makes command failures halt the remaining command sequence.
// File operation failures always abort.
func (e *CombinedExecutor) WithFailFast(failFast bool) *CombinedExecutor {
	e.failFast = failFast
	return e
}

// EnableForce allows file writes to replace existing targets
func (e *CombinedExecutor) EnableForce(force bool) *CombinedExecutor {
	e.synthfsExecutor.EnableForce(force)
	return e
}

// ExecuteOperations executes operations in dependency order and returns
// one outcome per command operation. A file operation failure aborts
// before any command runs.
func (e *CombinedExecutor) ExecuteOperations(ctx context.Context, ops []operations.Operation) ([]operations.Outcome, error) {
	if len(ops) == 0 {
		return nil, nil
	}

	var dirOps, backupOps, writeOps, executeOps []operations.Operation

	for _, op := range ops {
		switch op.Type {
		case operations.OperationCreateDir:
			dirOps = append(dirOps, op)
		case operations.OperationBackupFile:
			backupOps = append(backupOps, op)
		case operations.OperationWriteFile:
			writeOps = append(writeOps, op)
		case operations.OperationExecute:
			executeOps = append(executeOps, op)
		}
	}

	// 1. Create directories first
	if len(dirOps) > 0 {
		e.logger.Debug().Int("count", len(dirOps)).Msg("Executing directory operations")
		if err := e.synthfsExecutor.ExecuteOperations(dirOps); err != nil {
			return nil, errors.Wrap(err, errors.ErrActionExecute, "failed to create directories")
		}
	}

	// 2. Back up existing files before they get replaced
	if len(backupOps) > 0 {
		e.logger.Debug().Int("count", len(backupOps)).Msg("Executing backup operations")
		if err := e.synthfsExecutor.ExecuteOperations(backupOps); err != nil {
			return nil, errors.Wrap(err, errors.ErrActionExecute, "failed to back up files")
		}
	}

	// 3. Write files
	if len(writeOps) > 0 {
		e.logger.Debug().Int("count", len(writeOps)).Msg("Executing write operations")
		if err := e.synthfsExecutor.ExecuteOperations(writeOps); err != nil {
			return nil, errors.Wrap(err, errors.ErrActionExecute, "failed to write files")
		}
	}

	// 4. Run commands last, sequentially
	var outcomes []operations.Outcome
	if len(executeOps) > 0 {
		e.logger.Debug().Int("count", len(executeOps)).Msg("Executing command operations")
		outcomes = e.commandExecutor.ExecuteSequence(ctx, executeOps, e.failFast)
	}

	return outcomes, nil
}
