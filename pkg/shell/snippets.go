// Package shell generates the snippets and helper scripts that hook venvup
// into interactive shells. Snippets come in two flavors: activation snippets
// that source a virtual environment's activate script directly, and
// integration snippets that load the venvup_activate helper from the data
// directory.
package shell

import (
	"fmt"
	"path/filepath"

	"github.com/mihaiBront/venvup/pkg/venv"
)

// Names of the helper scripts installed under the data directory.
const (
	InitScriptSh   = "venvup-init.sh"
	InitScriptFish = "venvup-init.fish"
)

// Default integration snippets, used when no data directory is known.
const (
	defaultShSnippet = `[ -f "$HOME/.local/share/venvup/shell/venvup-init.sh" ] && source "$HOME/.local/share/venvup/shell/venvup-init.sh"`

	defaultFishSnippet = `if test -f "$HOME/.local/share/venvup/shell/venvup-init.fish"
    source "$HOME/.local/share/venvup/shell/venvup-init.fish"
end`
)

// ActivationScript returns the name of the activate script the given shell
// sources. Virtual environments ship one per shell family.
func ActivationScript(shellName string) string {
	switch shellName {
	case "fish":
		return "activate.fish"
	case "powershell", "pwsh":
		return "Activate.ps1"
	default:
		return "activate"
	}
}

// GetActivationSnippet returns a command that activates env when evaluated
// by the given shell, e.g. eval "$(venvup snippet)". The snippet guards on
// the script existing so evaluating it in a project without an environment
// is harmless.
func GetActivationSnippet(shellName string, env *venv.Env) string {
	script := filepath.Join(env.BinDir(), ActivationScript(shellName))
	switch shellName {
	case "fish":
		return fmt.Sprintf(`if test -f "%s"
    source "%s"
end`, script, script)
	case "powershell", "pwsh":
		return fmt.Sprintf(`& "%s"`, script)
	default:
		return fmt.Sprintf(`[ -f "%s" ] && . "%s"`, script, script)
	}
}

// GetIntegrationSnippet returns the line to add to a shell profile so the
// venvup_activate helper is available in new sessions. When dataDir is
// empty the snippet falls back to the default XDG data location.
func GetIntegrationSnippet(shellName string, dataDir string) string {
	var scriptName string
	switch shellName {
	case "fish":
		scriptName = InitScriptFish
	default:
		scriptName = InitScriptSh
	}

	if dataDir != "" {
		switch shellName {
		case "fish":
			return fmt.Sprintf(`if test -f "%s/shell/%s"
    source "%s/shell/%s"
end`, dataDir, scriptName, dataDir, scriptName)
		default:
			return fmt.Sprintf(`[ -f "%s/shell/%s" ] && source "%s/shell/%s"`, dataDir, scriptName, dataDir, scriptName)
		}
	}

	if shellName == "fish" {
		return defaultFishSnippet
	}
	return defaultShSnippet
}
