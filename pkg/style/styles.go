// Package style defines the visual styling for venvup's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The definitions live in the
// embedded styles.yaml so the palette can be reviewed in one place.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

// Adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

// Named styles bound from the registry
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	NormalStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	WarningStyle  lipgloss.Style
	InfoStyle     lipgloss.Style
	PackageStyle  lipgloss.Style
	PathStyle     lipgloss.Style
	CodeStyle     lipgloss.Style
)

// Operation indicator strings
var (
	SuccessIndicator string
	ErrorIndicator   string
	WarningIndicator string
	InfoIndicator    string
	PendingIndicator string
	SkippedIndicator string
)

func init() {
	if err := loadStyles(stylesYAML); err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
	bindStyles()
}

// loadStyles parses a styles configuration and populates the registry
func loadStyles(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles.yaml: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	StyleRegistry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}

	return nil
}

// bindStyles assigns the named styles and indicators from the registry
func bindStyles() {
	TitleStyle = GetStyle("Title")
	SubtitleStyle = GetStyle("Subtitle")
	NormalStyle = GetStyle("Normal")
	MutedStyle = GetStyle("Muted")
	SuccessStyle = GetStyle("Success")
	ErrorStyle = GetStyle("Error")
	WarningStyle = GetStyle("Warning")
	InfoStyle = GetStyle("Info")
	PackageStyle = GetStyle("Package")
	PathStyle = GetStyle("Path")
	CodeStyle = GetStyle("Code")

	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator = InfoStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
	SkippedIndicator = MutedStyle.Render("-")
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Helper functions

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
