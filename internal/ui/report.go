package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"rig/pkg/engine"
)

// OutcomeSymbol returns the status indicator for an outcome.
func OutcomeSymbol(status engine.Status) string {
	switch status {
	case engine.StatusInstalled:
		return Green(SymbolSuccess)
	case engine.StatusAlreadyPresent:
		return Muted.Sprint(SymbolPending)
	case engine.StatusFailed:
		return Red(SymbolError)
	case engine.StatusCancelled:
		return Yellow(SymbolWarning)
	}
	return " "
}

// PrintOutcome prints a single-line result for one target.
func PrintOutcome(o engine.Outcome) {
	switch o.Status {
	case engine.StatusInstalled:
		fmt.Printf("  %s %s installed\n", OutcomeSymbol(o.Status), o.Target.Display())
	case engine.StatusAlreadyPresent:
		Muted.Printf("  %s %s already present\n", SymbolPending, o.Target.Display())
	case engine.StatusFailed:
		fmt.Printf("  %s %s failed after %d attempt(s): %s\n", OutcomeSymbol(o.Status), o.Target.Display(), o.Attempts, o.Reason)
	case engine.StatusCancelled:
		fmt.Printf("  %s %s cancelled\n", OutcomeSymbol(o.Status), o.Target.Display())
	}
}

// PrintSummary prints the aggregate counts for a finished run.
func PrintSummary(counts engine.Counts) {
	fmt.Println()
	Println("%s installed, %s already present, %s failed, %s cancelled",
		Green(fmt.Sprintf("%d", counts.Installed)),
		Muted.Sprintf("%d", counts.Present),
		Red(fmt.Sprintf("%d", counts.Failed)),
		Yellow(fmt.Sprintf("%d", counts.Cancelled)))
}

// PrintFailures prints a table of failed targets in batch order.
func PrintFailures(failures []engine.FailureRecord) {
	if len(failures) == 0 {
		return
	}

	fmt.Println()
	ErrorMsg("%d target(s) failed:", len(failures))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, Bold("TARGET")+"\t"+Bold("ATTEMPTS")+"\t"+Bold("REASON"))
	for _, f := range failures {
		fmt.Fprintf(w, "%s\t%d\t%s\n", f.Target.Display(), f.Attempts, f.Reason)
	}
	w.Flush() //nolint:errcheck
}
