package cli

import (
	"time"

	"github.com/spf13/cobra"

	"rig/internal/history"
	"rig/internal/ui"
)

var (
	historyLimit int
	historyClear bool
	historyPrune string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past apply runs",
	Long: `History lists previous apply runs with their outcome counts.
Failed targets are shown per run when --verbose is set.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "max runs to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded runs")
	historyCmd.Flags().StringVar(&historyPrune, "prune", "", "delete runs older than a duration (e.g. 720h)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	if historyClear {
		if !cfg.General.AutoConfirm {
			ok, err := ui.Confirm("Delete all recorded runs", false)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAborted
			}
		}
		if err := store.Clear(); err != nil {
			return err
		}
		ui.SuccessMsg("History cleared")
		return nil
	}

	if historyPrune != "" {
		maxAge, err := time.ParseDuration(historyPrune)
		if err != nil {
			return err
		}
		n, err := store.Prune(maxAge)
		if err != nil {
			return err
		}
		ui.SuccessMsg("Pruned %d run(s)", n)
		return nil
	}

	entries, err := store.List(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ui.InfoMsg("No runs recorded yet")
		return nil
	}

	for _, e := range entries {
		ui.Println("%s  %s", ui.Bold(e.FormatTime()), e.Summary())
		if cfg.Output.Verbose {
			for _, f := range e.Failures {
				ui.MutedMsg("    %s/%s failed after %d attempt(s): %s",
					f.Ecosystem, f.Target, f.Attempts, f.Reason)
			}
		}
	}
	return nil
}
