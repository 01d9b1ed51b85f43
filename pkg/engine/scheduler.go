package engine

import (
	"context"
	"sync"
)

// Scheduler fans a batch out to a bounded pool of workers, each
// dispatching one target at a time, and collects the outcomes into a
// report. The batch always runs to completion (or cancellation):
// a failed target never blocks or aborts the others.
type Scheduler struct {
	installer   Installer
	policy      AttemptPolicy
	concurrency int
	observer    func(Outcome)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPolicy sets the attempt policy applied to every target.
func WithPolicy(p AttemptPolicy) Option {
	return func(s *Scheduler) { s.policy = p }
}

// WithConcurrency bounds the number of targets in flight at once.
// Values below 1 fall back to sequential execution.
func WithConcurrency(n int) Option {
	return func(s *Scheduler) { s.concurrency = n }
}

// WithObserver registers a callback invoked once per outcome as it
// arrives. Callbacks run on the aggregator goroutine, never
// concurrently with each other.
func WithObserver(fn func(Outcome)) Option {
	return func(s *Scheduler) { s.observer = fn }
}

// NewScheduler creates a scheduler around the given installer.
// Defaults: sequential execution, DefaultPolicy.
func NewScheduler(installer Installer, opts ...Option) *Scheduler {
	s := &Scheduler{
		installer:   installer,
		policy:      DefaultPolicy(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.concurrency < 1 {
		s.concurrency = DefaultConcurrency
	}
	return s
}

// Run executes the batch and returns the finalized report once every
// target has an outcome. Duplicate target names are collapsed: the
// first occurrence is dispatched, later ones are ignored.
//
// Cancelling ctx stops new work cooperatively; targets not yet
// started and workers sleeping in backoff record cancelled outcomes,
// while in-flight install calls are left to finish their attempt.
func (s *Scheduler) Run(ctx context.Context, batch Batch) *Report {
	report := newReport(batch)

	unique := make(Batch, 0, len(batch))
	seen := make(map[string]bool, len(batch))
	for _, t := range batch {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		unique = append(unique, t)
	}

	jobs := make(chan Target)
	outcomes := make(chan Outcome)

	var wg sync.WaitGroup
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				if ctx.Err() != nil {
					outcomes <- Outcome{Target: t, Status: StatusCancelled, Reason: reasonCancelled}
					continue
				}
				outcomes <- Dispatch(ctx, s.installer, t, s.policy)
			}
		}()
	}

	go func() {
		for _, t := range unique {
			jobs <- t
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Single aggregator: workers never touch the report directly.
	for o := range outcomes {
		report.add(o)
		if s.observer != nil {
			s.observer(o)
		}
	}

	report.finalize()
	return report
}
