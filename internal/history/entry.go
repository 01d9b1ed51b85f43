// Package history records provisioning runs in BoltDB.
package history

import (
	"fmt"
	"time"

	"rig/pkg/engine"
)

// FailureRecord is one failed target within a run.
type FailureRecord struct {
	Ecosystem string `json:"ecosystem"`
	Target    string `json:"target"`
	Reason    string `json:"reason"`
	Attempts  int    `json:"attempts"`
}

// Entry represents a single provisioning run.
type Entry struct {
	ID         string          `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Ecosystems []string        `json:"ecosystems"`
	Present    int             `json:"present"`
	Installed  int             `json:"installed"`
	Failed     int             `json:"failed"`
	Cancelled  int             `json:"cancelled"`
	DurationMs int64           `json:"duration_ms"`
	DryRun     bool            `json:"dry_run"`
	Failures   []FailureRecord `json:"failures,omitempty"`
}

// NewEntry creates a new run entry stamped with the current time.
func NewEntry(dryRun bool) *Entry {
	now := time.Now()
	return &Entry{
		ID:        now.Format("20060102150405.000000"),
		Timestamp: now,
		DryRun:    dryRun,
	}
}

// AddReport folds one ecosystem's report into the entry.
func (e *Entry) AddReport(ecosystem string, report *engine.Report) {
	e.Ecosystems = append(e.Ecosystems, ecosystem)

	counts := report.Counts()
	e.Present += counts.Present
	e.Installed += counts.Installed
	e.Failed += counts.Failed
	e.Cancelled += counts.Cancelled

	for _, f := range report.Failures() {
		e.Failures = append(e.Failures, FailureRecord{
			Ecosystem: ecosystem,
			Target:    f.Target.Name,
			Reason:    f.Reason,
			Attempts:  f.Attempts,
		})
	}
}

// Finish records the total run duration.
func (e *Entry) Finish(started time.Time) {
	e.DurationMs = time.Since(started).Milliseconds()
}

// Total returns the number of targets the run covered.
func (e *Entry) Total() int {
	return e.Present + e.Installed + e.Failed + e.Cancelled
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a one-line description of the run.
func (e *Entry) Summary() string {
	label := ""
	if e.DryRun {
		label = " (dry-run)"
	}
	return fmt.Sprintf("%s  %d targets: %d installed, %d present, %d failed%s",
		e.FormatTime(), e.Total(), e.Installed, e.Present, e.Failed, label)
}
