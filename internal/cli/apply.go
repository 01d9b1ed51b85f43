package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rig/internal/history"
	"rig/internal/tui"
	"rig/internal/ui"
	"rig/pkg/engine"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Install everything the manifest lists",
	Long: `Apply reads the manifest and brings the machine up to date:
packages already present are skipped, missing ones are installed with
retries, and failures are reported at the end without stopping the run.

Press Ctrl+C to cancel; in-flight installs finish, pending ones are
marked cancelled.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&useTUI, "tui", false, "show live progress in a full-screen view")
}

// ecosystemPlan is one manifest ecosystem resolved against an
// available adapter.
type ecosystemPlan struct {
	Ecosystem string
	Display   string
	Batch     engine.Batch
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(cfg.Batches()) == 0 {
		return ErrNothingToDo
	}
	plan := plannedBatches()
	if len(plan) == 0 {
		ui.InfoMsg("Nothing to do: no listed package has an available tool")
		return nil
	}

	printPlan(plan)

	if !cfg.General.AutoConfirm && !cfg.General.DryRun {
		ok, err := ui.Confirm("Proceed", true)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	started := time.Now()
	entry := history.NewEntry(cfg.General.DryRun)

	var program *tea.Program
	if useTUI {
		program = tui.Run(tuiPlan(plan))
	}

	total := engine.Counts{}
	var failures []engine.FailureRecord
	for _, ep := range plan {
		adapter, err := registry.Get(ep.Ecosystem)
		if err != nil {
			return err
		}

		eco := ep.Ecosystem
		observer := func(o engine.Outcome) {
			if program != nil {
				program.Send(tui.OutcomeMsg{Ecosystem: eco, Outcome: o})
			} else {
				ui.PrintOutcome(o)
			}
		}

		if program == nil {
			ui.HeaderMsg("%s", ep.Display)
		}

		sched := engine.NewScheduler(adapter,
			engine.WithPolicy(cfg.Policy()),
			engine.WithConcurrency(cfg.General.Concurrency),
			engine.WithObserver(observer),
		)
		report := sched.Run(ctx, ep.Batch)

		entry.AddReport(eco, report)
		counts := report.Counts()
		total.Present += counts.Present
		total.Installed += counts.Installed
		total.Failed += counts.Failed
		total.Cancelled += counts.Cancelled
		failures = append(failures, report.Failures()...)
	}
	entry.Finish(started)

	if program != nil {
		program.Send(tui.DoneMsg{})
		program.Wait()
	}

	ui.PrintSummary(total)
	if len(failures) > 0 {
		ui.PrintFailures(failures)
	}

	if !cfg.General.DryRun {
		if err := recordRun(entry); err != nil {
			ui.WarningMsg("Could not record run history: %v", err)
		}
	}

	if ctx.Err() != nil {
		ui.WarningMsg("Run cancelled")
	}
	return nil
}

// plannedBatches resolves the manifest into batches, dropping
// ecosystems whose tool is not on PATH.
func plannedBatches() []ecosystemPlan {
	var plan []ecosystemPlan
	for _, eb := range cfg.Batches() {
		adapter, err := registry.Get(eb.Ecosystem)
		if err != nil {
			ui.WarningMsg("Unknown ecosystem %q in manifest, skipping", eb.Ecosystem)
			continue
		}
		if !adapter.IsAvailable() {
			ui.WarningMsg("%s is not installed, skipping %d package(s)",
				adapter.DisplayName(), len(eb.Batch))
			continue
		}
		plan = append(plan, ecosystemPlan{
			Ecosystem: eb.Ecosystem,
			Display:   adapter.DisplayName(),
			Batch:     eb.Batch,
		})
	}
	return plan
}

func printPlan(plan []ecosystemPlan) {
	if cfg.General.DryRun {
		ui.InfoMsg("Dry run: no changes will be made")
	}
	count := 0
	for _, p := range plan {
		count += len(p.Batch)
	}
	ui.InfoMsg("Applying %d package(s) across %d ecosystem(s)", count, len(plan))
	if cfg.Output.Verbose {
		for _, p := range plan {
			ui.MutedMsg("  %s: %v", p.Display, p.Batch.Names())
		}
	}
}

func tuiPlan(plan []ecosystemPlan) []tui.Ecosystem {
	out := make([]tui.Ecosystem, 0, len(plan))
	for _, p := range plan {
		out = append(out, tui.Ecosystem{Name: p.Ecosystem, Targets: p.Batch})
	}
	return out
}

func recordRun(entry *history.Entry) error {
	store, err := history.Open()
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(entry)
}
