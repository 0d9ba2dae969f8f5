package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks the format from the terminal's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich output with colors and styling
	FormatTerminal
	// FormatText renders plain text without any styling
	FormatText
	// FormatJSON renders machine-readable JSON
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the output format from the environment and the
// output's terminal capabilities.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected output gets plain text
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// NewRenderer returns the renderer for the format, resolving FormatAuto
// against the output's capabilities.
func NewRenderer(format Format, output *os.File) Renderer {
	if format == FormatAuto {
		format = DetectFormat(output)
	}

	switch format {
	case FormatJSON:
		return NewJSONRenderer()
	case FormatText:
		return NewTextRenderer(output)
	default:
		return NewRichRenderer()
	}
}
