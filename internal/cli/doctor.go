package cli

import (
	"github.com/spf13/cobra"

	"rig/internal/config"
	"rig/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment rig depends on",
	Long: `Doctor reports the host system, which package-manager tools
are reachable on PATH, and where rig keeps its manifest and history.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ui.HeaderMsg("System")
	ui.Println("  %s", sysInfo.Summary())

	ui.HeaderMsg("Tools")
	for _, a := range registry.All() {
		if a.IsAvailable() {
			ui.SuccessMsg("  %s %s (%s)", ui.SymbolSuccess, a.DisplayName(), a.Name())
		} else {
			ui.MutedMsg("  %s %s (%s) not found on PATH", ui.SymbolError, a.DisplayName(), a.Name())
		}
	}

	ui.HeaderMsg("Paths")
	ui.Println("  Manifest: %s", config.ConfigPath())
	ui.Println("  History:  %s", config.HistoryPath())

	if _, err := config.Load(); err != nil {
		ui.ErrorMsg("Manifest does not parse: %v", err)
	} else {
		ui.SuccessMsg("  Manifest OK")
	}
	return nil
}
