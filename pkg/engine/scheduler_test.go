package engine

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSchedulerBatchResilience(t *testing.T) {
	inst := newFakeInstaller()
	inst.script["bad"] = failN(10, &Failure{Reason: "mirror down"})

	batch := NewBatch("a", "b", "bad", "c", "d")
	s := NewScheduler(inst, WithPolicy(noBackoffPolicy(3)))
	report := s.Run(context.Background(), batch)

	if got := report.Done(); got != 5 {
		t.Fatalf("expected 5 outcomes, got %d", got)
	}

	counts := report.Counts()
	if counts.Failed != 1 {
		t.Errorf("expected 1 failure, got %d", counts.Failed)
	}
	if counts.Installed != 4 {
		t.Errorf("expected 4 installs, got %d", counts.Installed)
	}

	o, ok := report.Outcome("bad")
	if !ok || o.Status != StatusFailed {
		t.Errorf("expected 'bad' to be failed, got %+v", o)
	}
}

func TestSchedulerConcurrencyBound(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
	}{
		{"sequential", 1},
		{"bounded", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newFakeInstaller()
			inst.delay = 10 * time.Millisecond

			batch := NewBatch("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
			s := NewScheduler(inst,
				WithPolicy(noBackoffPolicy(1)),
				WithConcurrency(tt.concurrency),
			)
			s.Run(context.Background(), batch)

			if inst.maxInFlight > tt.concurrency {
				t.Errorf("max in-flight installs %d exceeds concurrency %d", inst.maxInFlight, tt.concurrency)
			}
		})
	}
}

func TestSchedulerScenario(t *testing.T) {
	// A is already present, B fails twice then succeeds, C always
	// fails, all under a 3-attempt policy.
	inst := newFakeInstaller()
	inst.present["A"] = true
	inst.script["B"] = failN(2, &Failure{Reason: "flaky"})
	inst.script["C"] = failN(10, &Failure{Reason: "broken"})

	s := NewScheduler(inst, WithPolicy(noBackoffPolicy(3)))
	report := s.Run(context.Background(), NewBatch("A", "B", "C"))

	wantStatus := map[string]Status{
		"A": StatusAlreadyPresent,
		"B": StatusInstalled,
		"C": StatusFailed,
	}
	for name, want := range wantStatus {
		o, ok := report.Outcome(name)
		if !ok {
			t.Fatalf("missing outcome for %s", name)
		}
		if o.Status != want {
			t.Errorf("%s: expected %s, got %s (%s)", name, want, o.Status, o.Reason)
		}
	}

	if got := inst.installCalls("A"); got != 0 {
		t.Errorf("A: expected 0 install calls, got %d", got)
	}
	if got := inst.installCalls("B"); got != 3 {
		t.Errorf("B: expected 3 install calls, got %d", got)
	}
	if got := inst.installCalls("C"); got != 3 {
		t.Errorf("C: expected 3 install calls, got %d", got)
	}

	counts := report.Counts()
	want := Counts{Present: 1, Installed: 1, Failed: 1}
	if counts != want {
		t.Errorf("expected counts %+v, got %+v", want, counts)
	}

	failures := report.Failures()
	if len(failures) != 1 || failures[0].Target.Name != "C" || failures[0].Attempts != 3 {
		t.Errorf("unexpected failure listing: %+v", failures)
	}
}

func TestSchedulerFailureOrderIsDeterministic(t *testing.T) {
	inst := newFakeInstaller()
	for _, name := range []string{"z", "m", "a"} {
		inst.script[name] = failN(1, &Failure{Reason: "nope"})
	}

	// Run concurrently so completion order is unpredictable; the
	// failure listing must still follow submission order.
	s := NewScheduler(inst,
		WithPolicy(noBackoffPolicy(1)),
		WithConcurrency(3),
	)
	report := s.Run(context.Background(), NewBatch("z", "ok1", "m", "ok2", "a"))

	failures := report.Failures()
	if len(failures) != 3 {
		t.Fatalf("expected 3 failures, got %d", len(failures))
	}
	for i, want := range []string{"z", "m", "a"} {
		if failures[i].Target.Name != want {
			t.Errorf("failure %d: expected %s, got %s", i, want, failures[i].Target.Name)
		}
	}
}

func TestSchedulerDuplicateTargetsCollapsed(t *testing.T) {
	inst := newFakeInstaller()

	s := NewScheduler(inst, WithPolicy(noBackoffPolicy(1)))
	report := s.Run(context.Background(), NewBatch("git", "git", "curl", "git"))

	if got := report.Len(); got != 2 {
		t.Errorf("expected 2 unique targets, got %d", got)
	}
	if got := inst.installCalls("git"); got != 1 {
		t.Errorf("expected 1 install call for duplicated target, got %d", got)
	}
}

func TestSchedulerCancelledBatch(t *testing.T) {
	inst := newFakeInstaller()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScheduler(inst, WithPolicy(noBackoffPolicy(3)), WithConcurrency(2))
	report := s.Run(ctx, NewBatch("a", "b", "c", "d"))

	if got := report.Done(); got != 4 {
		t.Fatalf("every target needs an outcome even when cancelled, got %d", got)
	}
	counts := report.Counts()
	if counts.Cancelled != 4 {
		t.Errorf("expected 4 cancelled outcomes, got %+v", counts)
	}
	for _, o := range report.Outcomes() {
		if o.Reason != "cancelled" {
			t.Errorf("%s: expected reason 'cancelled', got %q", o.Target.Name, o.Reason)
		}
	}
}

func TestSchedulerObserver(t *testing.T) {
	inst := newFakeInstaller()
	inst.present["a"] = true

	var mu sync.Mutex
	var seen []string
	s := NewScheduler(inst,
		WithPolicy(noBackoffPolicy(1)),
		WithConcurrency(2),
		WithObserver(func(o Outcome) {
			mu.Lock()
			seen = append(seen, o.Target.Name)
			mu.Unlock()
		}),
	)
	s.Run(context.Background(), NewBatch("a", "b", "c"))

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 3 {
		t.Errorf("expected observer to see 3 outcomes, got %d (%v)", len(seen), seen)
	}
}

func TestSchedulerEmptyBatch(t *testing.T) {
	inst := newFakeInstaller()
	s := NewScheduler(inst)
	report := s.Run(context.Background(), nil)

	if report.Done() != 0 || report.Len() != 0 {
		t.Errorf("expected empty report, got %d/%d", report.Done(), report.Len())
	}
	if counts := report.Counts(); counts.Total() != 0 {
		t.Errorf("expected zero counts, got %+v", counts)
	}
}
