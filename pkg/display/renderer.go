package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/mihaiBront/venvup/pkg/style"
)

// Renderer defines the interface for rendering command results
type Renderer interface {
	// RenderCommandResult renders the complete command result
	RenderCommandResult(result CommandResult) string
}

// RichRenderer produces styled terminal output in a three-column
// format: indicator, package, message
type RichRenderer struct {
	nameWidth int
}

// NewRichRenderer creates a new rich terminal renderer
func NewRichRenderer() *RichRenderer {
	return &RichRenderer{
		nameWidth: 26,
	}
}

// RenderCommandResult renders the complete command result
func (r *RichRenderer) RenderCommandResult(result CommandResult) string {
	var output strings.Builder

	// Command header, capitalized
	headerText := result.Command
	if len(headerText) > 0 {
		headerText = strings.ToUpper(headerText[:1]) + headerText[1:]
	}
	if result.DryRun {
		headerText += " (dry run)"
	}
	output.WriteString(style.TitleStyle.Render(headerText) + "\n")

	for _, pkg := range result.Packages {
		output.WriteString(r.renderPackageResult(pkg) + "\n")
	}

	if len(result.Packages) > 0 {
		output.WriteString("\n")
		output.WriteString(r.renderSummary(result))
	}

	return output.String()
}

// renderPackageResult renders a single package row
func (r *RichRenderer) renderPackageResult(pkg PackageResult) string {
	name := pkg.Name
	if pkg.Status == style.StatusError {
		name = style.ErrorStyle.Render(name)
	} else {
		name = style.PackageStyle.Render(name)
	}

	// Pad by the raw name length since the styled string carries
	// invisible escape sequences
	padding := r.nameWidth - len(pkg.Name)
	if padding < 1 {
		padding = 1
	}

	message := pkg.Message
	if pkg.Status == style.StatusSkipped || pkg.Status == style.StatusQueue {
		message = style.MutedStyle.Render(message)
	}

	return fmt.Sprintf("  %s %s%s%s",
		style.Indicator(pkg.Status), name, strings.Repeat(" ", padding), message)
}

// renderSummary renders the closing statistics line
func (r *RichRenderer) renderSummary(result CommandResult) string {
	s := result.Summary

	parts := []string{}
	if result.DryRun {
		parts = append(parts, fmt.Sprintf("%d to install", s.Total))
	} else {
		parts = append(parts, fmt.Sprintf("%d installed", s.Succeeded))
		if s.Failed > 0 {
			parts = append(parts, style.ErrorStyle.Render(fmt.Sprintf("%d failed", s.Failed)))
		}
		if s.Skipped > 0 {
			parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
		}
	}

	line := strings.Join(parts, ", ")
	if !result.DryRun && s.Duration > 0 {
		line += style.MutedStyle.Render(fmt.Sprintf(" in %s", s.Duration.Round(10*time.Millisecond)))
	}
	return line + "\n"
}
