package style

import (
	"github.com/pterm/pterm"
)

// Status types for packages and runs
type Status string

const (
	StatusSuccess Status = "success" // Installed successfully
	StatusError   Status = "error"   // Install failed
	StatusQueue   Status = "queue"   // To be installed
	StatusSkipped Status = "skipped" // Not attempted
	StatusMissing Status = "missing" // Not present in the environment
	StatusAlert   Status = "alert"   // Run-level failure
	StatusConfig  Status = "config"  // Config file found
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case StatusQueue:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusAlert:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusConfig:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Indicator returns the one-character marker for a status
func Indicator(status Status) string {
	switch status {
	case StatusSuccess:
		return SuccessIndicator
	case StatusError, StatusAlert:
		return ErrorIndicator
	case StatusQueue:
		return PendingIndicator
	case StatusSkipped:
		return SkippedIndicator
	case StatusMissing:
		return WarningIndicator
	default:
		return InfoIndicator
	}
}
