package cli

import (
	"os"

	"github.com/spf13/cobra"

	"rig/internal/config"
	"rig/internal/ui"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter manifest",
	Long: `Init writes a starter rig.toml to the config directory (or the
path given with --config) with a few example packages to edit.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing manifest")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return err
		}
		path = config.ConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		ui.ErrorMsg("Manifest already exists at %s (use --force to overwrite)", path)
		return ErrManifestExists
	}

	starter := config.Default()
	starter.Packages = config.PackagesConfig{
		Brew: []string{"git", "jq", "ripgrep"},
		Cask: []string{"visual-studio-code"},
		Npm:  []string{"typescript"},
		Go: map[string]string{
			"gopls": "golang.org/x/tools/gopls",
		},
	}

	if err := starter.SaveTo(path); err != nil {
		return err
	}
	ui.SuccessMsg("Wrote starter manifest to %s", path)
	ui.MutedMsg("Edit it, then run 'rig apply'")
	return nil
}
