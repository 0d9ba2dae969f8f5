package display

import (
	"fmt"
	"io"
	"strings"
)

// TextRenderer provides minimal text output for non-TTY destinations
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{
		writer: w,
	}
}

// RenderCommandResult renders the result in a plain two-column format
func (r *TextRenderer) RenderCommandResult(result CommandResult) string {
	var output strings.Builder

	header := result.Command
	if result.DryRun {
		header += " (dry run)"
	}
	output.WriteString(header + "\n")

	for _, pkg := range result.Packages {
		fmt.Fprintf(&output, "    %-26s : %s\n", pkg.Name, pkg.Message)
	}

	if len(result.Packages) > 0 {
		s := result.Summary
		fmt.Fprintf(&output, "\n%d total, %d ok, %d failed, %d skipped\n",
			s.Total, s.Succeeded, s.Failed, s.Skipped)
	}

	return output.String()
}

// Render writes the result to the renderer's writer
func (r *TextRenderer) Render(result CommandResult) error {
	_, err := io.WriteString(r.writer, r.RenderCommandResult(result))
	return err
}
