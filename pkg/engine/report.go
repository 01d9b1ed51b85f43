package engine

import "sync"

// Counts holds the per-status totals of a report.
type Counts struct {
	Present   int `json:"present"`
	Installed int `json:"installed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

// Total returns the number of recorded outcomes.
func (c Counts) Total() int {
	return c.Present + c.Installed + c.Failed + c.Cancelled
}

// FailureRecord is one entry of a report's failure listing.
type FailureRecord struct {
	Target   Target `json:"target"`
	Reason   string `json:"reason"`
	Attempts int    `json:"attempts"`
}

// Report aggregates the outcomes of a batch run, keyed by target
// name. It is safe to read while the batch is still running, so a
// long batch can expose partial progress; once the scheduler
// finalizes it, it is read-only.
type Report struct {
	mu       sync.RWMutex
	order    []string
	outcomes map[string]Outcome
	final    bool
}

func newReport(batch Batch) *Report {
	r := &Report{outcomes: make(map[string]Outcome, len(batch))}
	seen := make(map[string]bool, len(batch))
	for _, t := range batch {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		r.order = append(r.order, t.Name)
	}
	return r
}

// add records one outcome. The first outcome wins per target name;
// nothing is recorded after finalization.
func (r *Report) add(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.final {
		return
	}
	if _, dup := r.outcomes[o.Target.Name]; dup {
		return
	}
	r.outcomes[o.Target.Name] = o
}

func (r *Report) finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.final = true
}

// Len returns the number of targets the report expects.
func (r *Report) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Done returns the number of outcomes recorded so far.
func (r *Report) Done() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.outcomes)
}

// Outcome looks up the recorded outcome for a target name.
func (r *Report) Outcome(name string) (Outcome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.outcomes[name]
	return o, ok
}

// Counts derives the per-status totals.
func (r *Report) Counts() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var c Counts
	for _, o := range r.outcomes {
		switch o.Status {
		case StatusAlreadyPresent:
			c.Present++
		case StatusInstalled:
			c.Installed++
		case StatusFailed:
			c.Failed++
		case StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

// ByStatus returns the outcomes with the given status in batch
// submission order, for deterministic listings.
func (r *Report) ByStatus(s Status) []Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Outcome
	for _, name := range r.order {
		if o, ok := r.outcomes[name]; ok && o.Status == s {
			out = append(out, o)
		}
	}
	return out
}

// Failures returns a record for every failed target, in batch
// submission order.
func (r *Report) Failures() []FailureRecord {
	var records []FailureRecord
	for _, o := range r.ByStatus(StatusFailed) {
		records = append(records, FailureRecord{
			Target:   o.Target,
			Reason:   o.Reason,
			Attempts: o.Attempts,
		})
	}
	return records
}

// Outcomes returns every recorded outcome in batch submission order.
func (r *Report) Outcomes() []Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Outcome, 0, len(r.outcomes))
	for _, name := range r.order {
		if o, ok := r.outcomes[name]; ok {
			out = append(out, o)
		}
	}
	return out
}
