package operations

// OperationType defines the type of operation
type OperationType string

const (
	// OperationExecute runs an external command
	OperationExecute OperationType = "execute"

	// OperationCreateDir creates a directory
	OperationCreateDir OperationType = "create_dir"

	// OperationWriteFile writes content to a file
	OperationWriteFile OperationType = "write_file"

	// OperationBackupFile creates a backup of a file
	OperationBackupFile OperationType = "backup_file"
)

// OperationStatus defines the state of an operation
type OperationStatus string

const (
	// StatusReady means the operation is ready to be executed
	StatusReady OperationStatus = "ready"
	// StatusSkipped means the operation was skipped
	StatusSkipped OperationStatus = "skipped"
	// StatusConflict means the operation cannot be performed due to a conflict
	StatusConflict OperationStatus = "conflict"
	// StatusError means the operation resulted in an error
	StatusError OperationStatus = "error"
)

// Operation represents one unit of work: an external command invocation
// or a file system mutation.
type Operation struct {
	// Type is the type of operation
	Type OperationType

	// Command is the executable to run (for execute operations).
	// Resolved through PATH, so an activated venv shadows system tools.
	Command string

	// Args are the command arguments
	Args []string

	// WorkingDir is the directory to run the command in (optional)
	WorkingDir string

	// EnvironmentVars are added to the inherited environment
	EnvironmentVars map[string]string

	// Source is the source path (for backups)
	Source string

	// Target is the target path
	Target string

	// Content is the content to write (for write operations)
	Content string

	// Mode is the file permissions (optional)
	Mode *uint32

	// Description is a human-readable description
	Description string

	// Status is the current state of the operation
	Status OperationStatus
}

// IsFileOp reports whether the operation mutates the file system
func (op Operation) IsFileOp() bool {
	switch op.Type {
	case OperationCreateDir, OperationWriteFile, OperationBackupFile:
		return true
	}
	return false
}
