package operations

import "time"

// Outcome is the result of executing one operation
type Outcome struct {
	// Operation is the operation that was executed
	Operation Operation

	// ExitCode is the command's exit status. Zero for file operations
	// and for dry-run outcomes.
	ExitCode int

	// Stdout and Stderr hold the captured command output
	Stdout string
	Stderr string

	// Duration is how long the execution took
	Duration time.Duration

	// Err is set when the operation failed
	Err error
}

// Success reports whether the operation completed cleanly
func (o Outcome) Success() bool {
	return o.Err == nil && o.ExitCode == 0
}

// LastExitCode returns the exit status of the final command that actually
// ran, or 0 when nothing ran. A sequence's process exit status follows its
// last executed command, so trailing skipped entries do not reset it.
func LastExitCode(outcomes []Outcome) int {
	for i := len(outcomes) - 1; i >= 0; i-- {
		if outcomes[i].Operation.Status == StatusSkipped {
			continue
		}
		return outcomes[i].ExitCode
	}
	return 0
}

// FailedCount returns how many outcomes did not succeed
func FailedCount(outcomes []Outcome) int {
	failed := 0
	for _, o := range outcomes {
		if !o.Success() {
			failed++
		}
	}
	return failed
}
