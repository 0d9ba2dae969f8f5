package opexec

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	synthops "github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/mihaiBront/venvup/pkg/errors"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/paths"
)

// SynthfsExecutor executes file operations using synthfs
type SynthfsExecutor struct {
	logger     zerolog.Logger
	dryRun     bool
	force      bool
	filesystem synthfs.FileSystem
	paths      paths.Paths
}

// NewSynthfsExecutor creates a new synthfs-based executor
func NewSynthfsExecutor(dryRun bool, p paths.Paths) *SynthfsExecutor {
	return &SynthfsExecutor{
		logger:     logging.GetLogger("opexec.synthfs"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
		paths:      p,
	}
}

// EnableForce enables or disables force mode (overwrite existing files)
func (e *SynthfsExecutor) EnableForce(force bool) *SynthfsExecutor {
	e.force = force
	return e
}

// ExecuteOperations executes a list of file operations using synthfs
func (e *SynthfsExecutor) ExecuteOperations(ops []operations.Operation) error {
	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range ops {
			if op.Status == operations.StatusReady {
				e.logOperation(op)
			}
		}
		return nil
	}

	// synthfs validation fails on existing targets, so force mode clears
	// them up front. Backup targets count: a stale backup from a prior
	// run must not block the copy.
	if e.force {
		for _, op := range ops {
			if op.Status == operations.StatusReady &&
				(op.Type == operations.OperationWriteFile || op.Type == operations.OperationBackupFile) {
				if _, err := os.Lstat(op.Target); err == nil {
					e.logger.Debug().
						Str("target", op.Target).
						Msg("Removing existing file to allow overwrite in force mode")
					if err := os.Remove(op.Target); err != nil {
						e.logger.Warn().
							Err(err).
							Str("target", op.Target).
							Msg("Failed to remove existing file in force mode")
					}
				}
			}
		}
	}

	synthOps := make([]synthfs.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Status != operations.StatusReady {
			e.logger.Debug().
				Str("type", string(op.Type)).
				Str("target", op.Target).
				Str("status", string(op.Status)).
				Msg("Skipping operation with non-ready status")
			continue
		}

		synthOp, err := e.convertToSynthfsOperation(op)
		if err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute,
				"failed to convert operation: %s", op.Description)
		}
		if synthOp != nil {
			synthOps = append(synthOps, synthOp)
		}
	}

	if len(synthOps) == 0 {
		e.logger.Debug().Msg("No file operations to execute")
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute,
				"failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	executor := synthfs.NewExecutor()

	e.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing file operations")

	result := executor.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrapf(result.GetError(), errors.ErrActionExecute,
			"failed to execute file operations")
	}

	e.logger.Info().Msg("All file operations executed successfully")
	return nil
}

// convertToSynthfsOperation converts a venvup operation to a synthfs operation
func (e *SynthfsExecutor) convertToSynthfsOperation(op operations.Operation) (synthfs.Operation, error) {
	switch op.Type {
	case operations.OperationCreateDir:
		return e.convertCreateDir(op)
	case operations.OperationWriteFile:
		return e.convertWriteFile(op)
	case operations.OperationBackupFile:
		return e.convertBackupFile(op)
	case operations.OperationExecute:
		// Command operations are handled by the CommandExecutor
		e.logger.Debug().
			Str("command", op.Command).
			Msg("Skipping execute operation in synthfs")
		return nil, nil
	default:
		return nil, errors.Newf(errors.ErrActionInvalid,
			"unsupported operation type: %s", op.Type)
	}
}

// convertCreateDir converts a create directory operation
func (e *SynthfsExecutor) convertCreateDir(op operations.Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"create directory operation requires target")
	}

	if err := e.validateSafePath(op.Target); err != nil {
		return nil, err
	}

	mode := os.FileMode(0755)
	if op.Mode != nil {
		mode = os.FileMode(*op.Mode)
	}

	e.logger.Debug().
		Str("target", op.Target).
		Str("mode", mode.String()).
		Msg("Creating directory operation")

	// synthfs works with paths relative to its filesystem root
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
	createOp := synthops.NewCreateDirectoryOperation(opID, relPath)

	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

// convertWriteFile converts a write file operation
func (e *SynthfsExecutor) convertWriteFile(op operations.Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"write file operation requires target")
	}

	if err := e.validateSafePath(op.Target); err != nil {
		return nil, err
	}

	mode := os.FileMode(0644)
	if op.Mode != nil {
		mode = os.FileMode(*op.Mode)
	}

	e.logger.Debug().
		Str("target", op.Target).
		Str("mode", mode.String()).
		Int("contentLen", len(op.Content)).
		Msg("Creating write file operation")

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
	createOp := synthops.NewCreateFileOperation(opID, relPath)

	createOp.SetItem(&fileItem{
		path:    relPath,
		content: []byte(op.Content),
		mode:    mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

// convertBackupFile converts a backup file operation
func (e *SynthfsExecutor) convertBackupFile(op operations.Operation) (synthfs.Operation, error) {
	if op.Source == "" || op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"backup file operation requires source and target")
	}

	if err := e.validateSafePath(op.Target); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("source", op.Source).
		Str("target", op.Target).
		Msg("Creating backup (copy) operation")

	relSource, err := filepath.Rel("/", op.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert source path: %s", op.Source)
	}
	relTarget, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert target path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("backup-%s", filepath.Base(op.Source)))
	copyOp := synthops.NewCopyOperation(opID, relTarget)

	copyOp.SetPaths(relSource, relTarget)

	return synthfs.NewOperationsPackageAdapter(copyOp), nil
}

// validateSafePath ensures the path is within venvup-controlled directories:
// the project root or the XDG directories venvup owns
func (e *SynthfsExecutor) validateSafePath(path string) error {
	if e.paths == nil {
		return errors.New(errors.ErrInternal, "paths not initialized")
	}

	normalizedPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to normalize path: %s", path)
	}

	safeDirectories := []string{
		e.paths.ProjectRoot(),
		e.paths.DataDir(),
		e.paths.ConfigDir(),
		e.paths.StateDir(),
		e.paths.ShellDir(),
	}

	for _, safeDir := range safeDirectories {
		if isPathWithin(normalizedPath, safeDir) {
			e.logger.Debug().
				Str("path", normalizedPath).
				Str("safeDir", safeDir).
				Msg("Path validated as safe")
			return nil
		}
	}

	return errors.Newf(errors.ErrFileWrite,
		"operation target is outside venvup-controlled directories: %s", path)
}

// isPathWithin checks if a path is within a parent directory
func isPathWithin(path, parent string) bool {
	path = filepath.Clean(path)
	parent = filepath.Clean(parent)

	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}

	return !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, "/")
}

// logOperation logs details about an operation
func (e *SynthfsExecutor) logOperation(op operations.Operation) {
	logger := e.logger.With().
		Str("type", string(op.Type)).
		Str("description", op.Description).
		Logger()

	switch op.Type {
	case operations.OperationCreateDir:
		logger.Info().
			Str("target", op.Target).
			Msg("Would create directory")
	case operations.OperationWriteFile:
		logger.Info().
			Str("target", op.Target).
			Int("contentLen", len(op.Content)).
			Msg("Would write file")
	case operations.OperationBackupFile:
		logger.Info().
			Str("source", op.Source).
			Str("target", op.Target).
			Msg("Would back up file")
	default:
		logger.Info().Msg("Would execute operation")
	}
}

// Item types for synthfs operations

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
