package venvup

import "fmt"

// ExitError carries a specific process exit status out of a command.
// main unwraps it with errors.As and forwards the code instead of the
// generic failure status.
type ExitError struct {
	// Code is the status the process should exit with.
	Code int
	// Err is the underlying error. Nil means the command already
	// reported the failure itself and main should exit quietly.
	Err error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
