package display

import (
	"time"

	"github.com/mihaiBront/venvup/pkg/style"
)

// CommandResult represents the complete result of a venvup command
// execution, formatted for display purposes.
type CommandResult struct {
	// Command is the command that was executed (up, init, etc.)
	Command string `json:"command"`

	// Packages contains the per-package results, in execution order
	Packages []PackageResult `json:"packages"`

	// Summary provides overall statistics
	Summary Summary `json:"summary"`

	// DryRun indicates if this was a dry run
	DryRun bool `json:"dryRun"`
}

// PackageResult represents the outcome for a single package
type PackageResult struct {
	// Name is the distribution name as passed to the installer
	Name string `json:"name"`

	// Status is the display status
	Status style.Status `json:"status"`

	// Message is the third display column ("installed", "exit status 1", ...)
	Message string `json:"message,omitempty"`

	// ExitCode is the installer's exit status for this package
	ExitCode int `json:"exitCode"`

	// Duration is how long the invocation took
	Duration time.Duration `json:"duration"`
}

// Summary provides overall command execution statistics
type Summary struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}

// GetOverallStatus returns the run status based on package results
func (cr *CommandResult) GetOverallStatus() style.Status {
	if cr.Summary.Failed > 0 {
		return style.StatusAlert
	}
	if cr.DryRun {
		return style.StatusQueue
	}
	if cr.Summary.Succeeded > 0 {
		return style.StatusSuccess
	}
	return style.StatusSkipped
}
