package venvup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mihaiBront/venvup/internal/version"
	"github.com/mihaiBront/venvup/pkg/cobrax/topics"
	"github.com/mihaiBront/venvup/pkg/commands/genconfig"
	"github.com/mihaiBront/venvup/pkg/commands/initialize"
	"github.com/mihaiBront/venvup/pkg/commands/list"
	"github.com/mihaiBront/venvup/pkg/commands/status"
	"github.com/mihaiBront/venvup/pkg/commands/up"
	"github.com/mihaiBront/venvup/pkg/config"
	"github.com/mihaiBront/venvup/pkg/display"
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/manifest"
	"github.com/mihaiBront/venvup/pkg/paths"
	"github.com/mihaiBront/venvup/pkg/shell"
	"github.com/mihaiBront/venvup/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		force     bool
	)

	rootCmd := &cobra.Command{
		Use:     "venvup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().String("root", "", MsgFlagRoot)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system
	// Try to find help topics relative to the executable location
	exe, err := os.Executable()
	if err == nil {
		// Look for help topics in various locations
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "topics"),                              // Same directory as binary (production)
			filepath.Join(filepath.Dir(exe), "..", "..", "cmd", "venvup", "topics"), // Development
			"cmd/venvup/topics", // Current directory fallback
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				opts := topics.Options{
					Extensions: []string{".txt", ".md"},
					// Always use Glamour renderer for markdown files
					Renderer: topics.NewGlamourRenderer(),
				}

				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// initPaths initializes the paths instance and shows a warning if using fallback
func initPaths(cmd *cobra.Command) (paths.Paths, error) {
	root, _ := cmd.Root().PersistentFlags().GetString("root")

	p, err := paths.New(root)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning+"\n", p.ProjectRoot())
	} else {
		// Debug: log how we found the path
		if os.Getenv("VENVUP_DEBUG") != "" {
			fmt.Fprintf(os.Stderr, MsgDebugProjectRoot, p.ProjectRoot(), p.UsedFallback())
		}
	}

	return p, nil
}

func newUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Short:   MsgUpShort,
		Long:    MsgUpLong,
		Example: MsgUpExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			// Get dry-run flag value (it's a persistent flag)
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			formatName, _ := cmd.Flags().GetString("format")
			format, err := display.ParseFormat(formatName)
			if err != nil {
				return err
			}

			cfg, err := config.Load(p.ProjectRoot())
			if err != nil {
				return err
			}

			// The config supplies the default, the flag wins when set
			failFast := cfg.Install.FailFast
			if cmd.Flags().Changed("fail-fast") {
				failFast, _ = cmd.Flags().GetBool("fail-fast")
			}

			log.Info().
				Str("project_root", p.ProjectRoot()).
				Bool("dry_run", dryRun).
				Msg("Installing package set into project environment")

			result, err := up.Run(cmd.Context(), up.Options{
				ProjectRoot: p.ProjectRoot(),
				Config:      cfg,
				Paths:       p,
				DryRun:      dryRun,
				FailFast:    failFast,
			})
			if err != nil {
				return fmt.Errorf(MsgErrUp, err)
			}

			if !result.EnvExists {
				fmt.Println(up.MsgEnvMissing)
				return nil
			}

			if dryRun {
				fmt.Println(MsgDryRunNotice)
			}

			// Pair each outcome with its manifest package for display
			names := manifest.Names()
			items := make([]display.Item, 0, len(result.Outcomes))
			for i, outcome := range result.Outcomes {
				item := display.Item{Outcome: outcome}
				if i < len(names) {
					item.Name = names[i]
				}
				items = append(items, item)
			}

			renderer := display.NewRenderer(format, os.Stdout)
			fmt.Println(renderer.RenderCommandResult(display.FromItems("up", items, dryRun)))

			if code := result.ExitCode(); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().Bool("fail-fast", false, MsgFlagFailFast)
	cmd.Flags().StringP("format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			cfg, err := config.Load(p.ProjectRoot())
			if err != nil {
				return err
			}

			log.Info().
				Str("project_root", p.ProjectRoot()).
				Bool("dry_run", dryRun).
				Msg("Creating project environment")

			result, err := initialize.Run(cmd.Context(), initialize.Options{
				ProjectRoot: p.ProjectRoot(),
				Config:      cfg,
				Paths:       p,
				DryRun:      dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}

			if dryRun {
				fmt.Println(MsgDryRunNotice)
				return nil
			}

			fmt.Printf(MsgEnvCreatedFormat, result.Env.Path())
			if result.ConfigPath != "" {
				fmt.Printf(MsgConfigWrittenFormat, result.ConfigPath)
			}

			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(p.ProjectRoot())
			if err != nil {
				return err
			}

			log.Info().Str("project_root", p.ProjectRoot()).Msg("Checking environment status")

			result, err := status.Run(cmd.Context(), status.Options{
				ProjectRoot: p.ProjectRoot(),
				Config:      cfg,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			if !result.EnvExists {
				fmt.Println(up.MsgEnvMissing)
				return nil
			}

			renderStatus(result)
			return nil
		},
	}
}

// renderStatus prints the environment summary and the per-package table
func renderStatus(result *status.Result) {
	fmt.Printf(MsgStatusEnvFormat, result.Env.Path())
	if result.Metadata != nil && result.Metadata.Version != "" {
		fmt.Printf(MsgStatusPythonFormat, result.Metadata.Version)
	}
	if result.ConfigPath != "" {
		fmt.Printf(MsgStatusConfigFormat, result.ConfigPath)
	}

	fmt.Println()
	for _, pkg := range result.Packages {
		if pkg.Installed {
			fmt.Printf("  %s %-28s %s\n", style.Indicator(style.StatusSuccess), pkg.Name, pkg.Version)
		} else {
			fmt.Printf("  %s %-28s %s\n", style.Indicator(style.StatusMissing), pkg.Name, "not installed")
		}
	}

	fmt.Println()
	if result.Missing == 0 {
		fmt.Println(MsgStatusComplete)
	} else {
		fmt.Printf(MsgStatusMissingFormat, result.Missing)
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := list.Packages()

			if oneline, _ := cmd.Flags().GetBool("oneline"); oneline {
				names := make([]string, len(result.Packages))
				for i, pkg := range result.Packages {
					names[i] = pkg.Name
				}
				fmt.Println(strings.Join(names, " "))
				return nil
			}

			fmt.Printf(MsgListHeaderFormat, len(result.Packages))
			for _, pkg := range result.Packages {
				fmt.Printf(MsgListItemFormat, pkg.Position, pkg.Name)
			}

			return nil
		},
	}

	cmd.Flags().Bool("oneline", false, MsgFlagOneline)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			force, _ := cmd.Root().PersistentFlags().GetBool("force")

			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := genconfig.Run(cmd.Context(), genconfig.Options{
				ProjectRoot: p.ProjectRoot(),
				Paths:       p,
				Write:       write,
				Force:       force,
				DryRun:      dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			if !write {
				fmt.Print(result.ConfigContent)
				return nil
			}

			if result.Conflicted {
				fmt.Printf(MsgConfigConflictFormat, result.TargetPath)
				return nil
			}

			if dryRun {
				fmt.Println(MsgDryRunNotice)
				return nil
			}

			if result.BackupPath != "" {
				fmt.Printf(MsgConfigBackupFormat, result.BackupPath)
			}
			fmt.Printf(MsgConfigWrittenFormat, result.TargetPath)

			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Example: MsgSnippetExample,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			shellName, _ := cmd.Flags().GetString("shell")
			provision, _ := cmd.Flags().GetBool("provision")

			// Initialize paths to get custom data directory if set
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			// Install shell scripts if requested
			if provision {
				dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
				if err := shell.InstallShellIntegration(p, dryRun); err != nil {
					return fmt.Errorf(MsgErrSnippet, err)
				}
				fmt.Fprintf(os.Stderr, MsgProvisionedFormat, p.ShellDir())
			}

			// Always use the actual data directory for the snippet
			fmt.Print(shell.GetIntegrationSnippet(shellName, p.DataDir()))

			return nil
		},
	}

	cmd.Flags().StringP("shell", "s", "bash", MsgFlagShell)
	cmd.Flags().Bool("provision", false, MsgFlagProvision)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
