package display

import (
	"fmt"

	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/style"
)

// Item pairs a package name with the outcome of its install invocation
type Item struct {
	Name    string
	Outcome operations.Outcome
}

// FromItems converts executed outcomes into a CommandResult
func FromItems(command string, items []Item, dryRun bool) CommandResult {
	result := CommandResult{
		Command: command,
		DryRun:  dryRun,
	}

	for _, item := range items {
		pkg := PackageResult{
			Name:     item.Name,
			ExitCode: item.Outcome.ExitCode,
			Duration: item.Outcome.Duration,
		}

		switch {
		case dryRun:
			pkg.Status = style.StatusQueue
			pkg.Message = "would install"
		case item.Outcome.Operation.Status == operations.StatusSkipped:
			pkg.Status = style.StatusSkipped
			pkg.Message = "skipped"
		case item.Outcome.Success():
			pkg.Status = style.StatusSuccess
			pkg.Message = "installed"
		case item.Outcome.ExitCode > 0:
			pkg.Status = style.StatusError
			pkg.Message = fmt.Sprintf("exit status %d", item.Outcome.ExitCode)
		default:
			pkg.Status = style.StatusError
			pkg.Message = "could not run installer"
		}

		result.Packages = append(result.Packages, pkg)
		result.Summary.Total++
		result.Summary.Duration += item.Outcome.Duration

		switch pkg.Status {
		case style.StatusSuccess, style.StatusQueue:
			result.Summary.Succeeded++
		case style.StatusError:
			result.Summary.Failed++
		case style.StatusSkipped:
			result.Summary.Skipped++
		}
	}

	return result
}
