// Package genconfig outputs or writes the default configuration with every
// value commented out, ready for selective editing.
package genconfig

import (
	"context"
	"path/filepath"

	"github.com/mihaiBront/venvup/pkg/config"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/operations"
	"github.com/mihaiBront/venvup/pkg/opexec"
	"github.com/mihaiBront/venvup/pkg/paths"
)

// BackupSuffix is appended to a replaced config file's name.
const BackupSuffix = ".bak"

// Options defines the options for the GenConfig command.
type Options struct {
	// ProjectRoot is the directory the config file lives in.
	ProjectRoot string
	// Paths locates the directories file operations are confined to.
	// Nil means derive from ProjectRoot.
	Paths paths.Paths
	// Write persists the content to the project root instead of only
	// returning it.
	Write bool
	// Force replaces an existing config file, backing it up first.
	Force bool
	// DryRun logs the write without performing it.
	DryRun bool
}

// Result holds the result of the GenConfig command.
type Result struct {
	// ConfigContent is the generated file content.
	ConfigContent string
	// TargetPath is the file that was (or would be) written. Empty
	// unless Write was requested.
	TargetPath string
	// Written reports whether the file landed on disk.
	Written bool
	// BackupPath is where the previous config was copied, empty when
	// nothing was replaced.
	BackupPath string
	// Conflicted reports that an existing file blocked the write.
	Conflicted bool
}

// Run generates the commented default configuration and optionally writes
// it to the project root. An existing config file is only replaced with
// Force, and gets backed up beside itself first.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.genconfig")

	result := &Result{ConfigContent: config.GenerateConfigContent()}

	if !opts.Write {
		log.Debug().Msg("Outputting config content only")
		return result, nil
	}

	existing := config.FindRootConfig(opts.ProjectRoot)
	if existing != "" {
		result.TargetPath = existing
	} else {
		result.TargetPath = filepath.Join(opts.ProjectRoot, config.DefaultFileName)
	}

	var ops []operations.Operation
	if existing != "" {
		if !opts.Force {
			log.Warn().Str("path", existing).Msg("Config file already exists, not overwriting")
			result.Conflicted = true
			return result, nil
		}

		// Note whether we are replacing a config that still parsed
		if _, err := config.ParseFile(existing); err != nil {
			log.Warn().Err(err).Str("path", existing).Msg("Existing config does not parse, replacing it")
		} else {
			log.Info().Str("path", existing).Msg("Backing up existing config before overwrite")
		}

		result.BackupPath = existing + BackupSuffix
		ops = append(ops, operations.Operation{
			Type:        operations.OperationBackupFile,
			Source:      existing,
			Target:      result.BackupPath,
			Description: "Back up existing configuration",
			Status:      operations.StatusReady,
		})
	}

	ops = append(ops, operations.Operation{
		Type:        operations.OperationWriteFile,
		Target:      result.TargetPath,
		Content:     result.ConfigContent,
		Description: "Write default configuration",
		Status:      operations.StatusReady,
	})

	p := opts.Paths
	if p == nil {
		var err error
		p, err = paths.New(opts.ProjectRoot)
		if err != nil {
			return nil, err
		}
	}

	executor := opexec.NewCombinedExecutor(opts.DryRun, p).EnableForce(opts.Force)
	if _, err := executor.ExecuteOperations(ctx, ops); err != nil {
		return nil, err
	}
	result.Written = !opts.DryRun

	log.Info().
		Str("command", "GenConfig").
		Str("path", result.TargetPath).
		Bool("dry_run", opts.DryRun).
		Msg("Command finished")
	return result, nil
}
