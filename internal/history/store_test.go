package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rig/pkg/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// reportFor builds a real engine report so entries are exercised with
// the same data shape production sees.
func reportFor(t *testing.T, script map[string][]error, names ...string) *engine.Report {
	t.Helper()
	inst := newScriptedInstaller(script)
	s := engine.NewScheduler(inst, engine.WithPolicy(engine.AttemptPolicy{
		MaxAttempts: 2,
		Backoff:     engine.FixedBackoff(0),
		IsRetryable: engine.RetryAll,
	}))
	return s.Run(context.Background(), engine.NewBatch(names...))
}

type scriptedInstaller struct {
	script map[string][]error
}

func newScriptedInstaller(script map[string][]error) *scriptedInstaller {
	if script == nil {
		script = make(map[string][]error)
	}
	return &scriptedInstaller{script: script}
}

func (s *scriptedInstaller) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	return false, nil
}

func (s *scriptedInstaller) Install(ctx context.Context, t engine.Target) error {
	if q := s.script[t.Name]; len(q) > 0 {
		err := q[0]
		s.script[t.Name] = q[1:]
		return err
	}
	return nil
}

func TestEntryAddReport(t *testing.T) {
	report := reportFor(t, map[string][]error{
		"bad": {&engine.Failure{Reason: "nope"}, &engine.Failure{Reason: "nope"}},
	}, "git", "bad", "curl")

	entry := NewEntry(false)
	entry.AddReport("brew", report)

	if entry.Installed != 2 {
		t.Errorf("expected 2 installed, got %d", entry.Installed)
	}
	if entry.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", entry.Failed)
	}
	if entry.Total() != 3 {
		t.Errorf("expected total 3, got %d", entry.Total())
	}
	if len(entry.Failures) != 1 || entry.Failures[0].Target != "bad" || entry.Failures[0].Attempts != 2 {
		t.Errorf("unexpected failure records: %+v", entry.Failures)
	}
	if entry.Failures[0].Ecosystem != "brew" {
		t.Errorf("failure should carry its ecosystem, got %q", entry.Failures[0].Ecosystem)
	}
}

func TestStoreRecordAndList(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		entry := NewEntry(false)
		entry.Installed = i
		// Distinct timestamps so bolt keys don't collide.
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Millisecond)
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first
	if entries[0].Installed != 2 {
		t.Errorf("expected newest entry first, got installed=%d", entries[0].Installed)
	}

	limited, err := store.List(2)
	if err != nil {
		t.Fatalf("List(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 entries with limit, got %d", len(limited))
	}

	count, err := store.Count()
	if err != nil || count != 3 {
		t.Errorf("expected count 3, got %d (%v)", count, err)
	}
}

func TestStoreLast(t *testing.T) {
	store := openTestStore(t)

	if last, err := store.Last(); err != nil || last != nil {
		t.Errorf("empty store should return nil last entry, got %v (%v)", last, err)
	}

	entry := NewEntry(true)
	entry.Failed = 2
	if err := store.Record(entry); err != nil {
		t.Fatal(err)
	}

	last, err := store.Last()
	if err != nil {
		t.Fatalf("Last failed: %v", err)
	}
	if last == nil || last.Failed != 2 || !last.DryRun {
		t.Errorf("unexpected last entry: %+v", last)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record(NewEntry(false)); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	count, err := store.Count()
	if err != nil || count != 0 {
		t.Errorf("expected empty store after clear, got %d (%v)", count, err)
	}
}

func TestStorePrune(t *testing.T) {
	store := openTestStore(t)

	old := NewEntry(false)
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	recent := NewEntry(false)

	if err := store.Record(old); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(recent); err != nil {
		t.Fatal(err)
	}

	deleted, err := store.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 pruned entry, got %d", deleted)
	}

	count, _ := store.Count() //nolint:errcheck
	if count != 1 {
		t.Errorf("expected 1 remaining entry, got %d", count)
	}
}

func TestEntrySummary(t *testing.T) {
	entry := NewEntry(true)
	entry.Installed = 2
	entry.Present = 1

	got := entry.Summary()
	for _, want := range []string{"3 targets", "2 installed", "1 present", "dry-run"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}
