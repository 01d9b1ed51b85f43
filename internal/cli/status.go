package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rig/internal/ui"
	"rig/pkg/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which manifest packages are already installed",
	Long: `Status checks every package the manifest lists against the
machine without installing anything. Useful before an apply to see how
much work is left.`,
	RunE: runStatus,
}

// targetStatus is one presence-check result.
type targetStatus struct {
	target  engine.Target
	present bool
	err     error
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(cfg.Batches()) == 0 {
		return ErrNothingToDo
	}
	plan := plannedBatches()
	if len(plan) == 0 {
		ui.InfoMsg("Nothing to check: no listed package has an available tool")
		return nil
	}

	present, missing := 0, 0
	for _, ep := range plan {
		adapter, err := registry.Get(ep.Ecosystem)
		if err != nil {
			return err
		}

		sp := ui.NewSpinner(fmt.Sprintf("Checking %s packages...", ep.Display))
		sp.Start()
		results := make([]targetStatus, 0, len(ep.Batch))
		for _, t := range ep.Batch {
			if ctx.Err() != nil {
				sp.Stop()
				return ctx.Err()
			}
			ok, err := adapter.IsPresent(ctx, t)
			results = append(results, targetStatus{target: t, present: ok, err: err})
		}
		sp.Stop()

		ui.HeaderMsg("%s", ep.Display)
		for _, r := range results {
			switch {
			case r.err != nil:
				ui.WarningMsg("  %s %s (check failed: %v)", ui.SymbolWarning, r.target.Display(), r.err)
				missing++
			case r.present:
				ui.SuccessMsg("  %s %s", ui.SymbolSuccess, r.target.Display())
				present++
			default:
				ui.MutedMsg("  %s %s (not installed)", ui.SymbolPending, r.target.Display())
				missing++
			}
		}
	}

	ui.Println("")
	ui.InfoMsg("%d installed, %d missing", present, missing)
	if missing > 0 {
		ui.MutedMsg("Run 'rig apply' to install the missing packages")
	}
	return nil
}
