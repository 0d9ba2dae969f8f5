package shell

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/opexec"
	"github.com/mihaiBront/venvup/pkg/paths"
)

var log = logging.GetLogger("shell")

var (
	//go:embed scripts/venvup-init.sh
	initScriptSh string

	//go:embed scripts/venvup-init.fish
	initScriptFish string
)

// integrationScripts lists the helper scripts in install order.
var integrationScripts = []struct {
	name    string
	content string
}{
	{InitScriptSh, initScriptSh},
	{InitScriptFish, initScriptFish},
}

// IntegrationOperations returns the file operations that install the shell
// helper scripts under the data directory.
func IntegrationOperations(p paths.Paths) []operations.Operation {
	// An existing directory satisfies the create, reinstalls only
	// replace the scripts
	dirStatus := operations.StatusReady
	if info, err := os.Stat(p.ShellDir()); err == nil && info.IsDir() {
		dirStatus = operations.StatusSkipped
	}

	ops := []operations.Operation{
		{
			Type:        operations.OperationCreateDir,
			Target:      p.ShellDir(),
			Description: "Create shell integration directory",
			Status:      dirStatus,
		},
	}
	for _, script := range integrationScripts {
		mode := uint32(0755)
		ops = append(ops, operations.Operation{
			Type:        operations.OperationWriteFile,
			Target:      filepath.Join(p.ShellDir(), script.name),
			Content:     script.content,
			Mode:        &mode,
			Description: "Install " + script.name,
			Status:      operations.StatusReady,
		})
	}
	return ops
}

// InstallShellIntegration writes the helper scripts to the data directory,
// replacing any previous versions.
func InstallShellIntegration(p paths.Paths, dryRun bool) error {
	executor := opexec.NewSynthfsExecutor(dryRun, p).EnableForce(true)
	if err := executor.ExecuteOperations(IntegrationOperations(p)); err != nil {
		return err
	}

	log.Info().
		Str("dir", p.ShellDir()).
		Bool("dry_run", dryRun).
		Msg("Shell integration scripts installed")
	return nil
}
