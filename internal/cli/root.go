// Package cli implements the command-line interface for rig.
package cli

import (
	"github.com/spf13/cobra"

	"rig/internal/config"
	"rig/internal/executor"
	"rig/internal/ui"
	"rig/pkg/installer"
	"rig/pkg/installer/detector"
)

var (
	// Global flags
	cfgFile     string
	dryRun      bool
	yes         bool
	verbose     bool
	noColor     bool
	concurrency int
	useTUI      bool

	// Global state
	cfg      *config.Config
	registry *installer.Registry
	sysInfo  *detector.SystemInfo
	exec     *executor.Executor
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rig",
	Short: "Provision a development workstation from a package manifest",
	Long: `Rig installs the packages a development machine needs across
several ecosystems - Homebrew formulae and casks, npm, pipx, RubyGems,
Go tools, and VS Code extensions - from a single TOML manifest.

Every install is idempotent: packages already present are skipped,
failures are retried with backoff, and one broken package never stops
the rest of the run.

Examples:
  rig init                 # Write a starter manifest
  rig apply                # Install everything the manifest lists
  rig apply -n             # Show what would happen
  rig apply --tui -j 4     # Live progress view, 4 installs at a time
  rig status               # Check what is already installed`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "manifest file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().IntVarP(&concurrency, "concurrency", "j", 0, "max packages installing at once (overrides manifest)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if concurrency > 0 {
		cfg.General.Concurrency = concurrency
	}

	// Initialize UI
	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	// Shared executor and adapter registry
	exec = executor.New(cfg.General.DryRun, cfg.Output.Verbose)
	registry = installer.Default(exec)
	sysInfo = detector.Detect()

	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print rig version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("rig version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
