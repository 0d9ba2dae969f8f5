package venvup

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A batch installer for Python virtual environments"
	MsgUpShort         = "Install the package set into the project environment"
	MsgInitShort       = "Create the project virtual environment"
	MsgStatusShort     = "Show environment and package status"
	MsgListShort       = "List the packages up installs"
	MsgListLong        = "List prints the fixed package set 'up' installs, in install order."
	MsgGenConfigShort  = "Generate default configuration file"
	MsgSnippetShort    = "Output shell integration snippet"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice         = "\nDRY RUN MODE - No changes were made"
	MsgEnvCreatedFormat     = "Created virtual environment at %s\n"
	MsgConfigWrittenFormat  = "Wrote %s\n"
	MsgConfigBackupFormat   = "Previous config saved to %s\n"
	MsgConfigConflictFormat = "%s already exists, pass --force to replace it\n"
	MsgListHeaderFormat     = "Install order (%d packages):\n"
	MsgListItemFormat       = "  %2d. %s\n"
	MsgStatusEnvFormat      = "Environment: %s\n"
	MsgStatusPythonFormat   = "Python:      %s\n"
	MsgStatusConfigFormat   = "Config:      %s\n"
	MsgStatusComplete       = "All packages installed."
	MsgStatusMissingFormat  = "%d package(s) missing, run 'venvup up' to install them.\n"
	MsgProvisionedFormat    = "Shell integration scripts installed to %s\n"

	// Error messages
	MsgErrInitPaths = "failed to initialize paths: %w"
	MsgErrUp        = "failed to install packages: %w"
	MsgErrInit      = "failed to create environment: %w"
	MsgErrStatus    = "failed to get environment status: %w"
	MsgErrGenConfig = "failed to generate config: %w"
	MsgErrSnippet   = "failed to install shell integration: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagForce     = "Replace files that already exist, keeping a backup"
	MsgFlagRoot      = "Project root (default: VENVUP_ROOT, git root, or working directory)"
	MsgFlagFailFast  = "Stop at the first package that fails to install"
	MsgFlagFormat    = "Output format (auto, terminal, text, json)"
	MsgFlagOneline   = "Print the package names space-joined on one line"
	MsgFlagWrite     = "Write config to file instead of stdout"
	MsgFlagShell     = "Shell type (bash, zsh, fish, powershell)"
	MsgFlagProvision = "Install shell integration scripts to data directory"

	// Debug messages
	MsgDebugProjectRoot = "Debug: Using project root: %s (fallback=%v)\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/up-long.txt
	msgUpLongRaw string
	MsgUpLong    = strings.TrimSpace(msgUpLongRaw)

	//go:embed msgs/up-example.txt
	msgUpExampleRaw string
	MsgUpExample    = strings.TrimSpace(msgUpExampleRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimSpace(msgInitExampleRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimSpace(msgStatusExampleRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimSpace(msgListExampleRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/snippet-example.txt
	msgSnippetExampleRaw string
	MsgSnippetExample    = strings.TrimSpace(msgSnippetExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)
)
