// Package engine implements an idempotent, retryable, parallel
// install engine. Callers supply a batch of targets and an Installer
// capable of checking and installing each one; the engine runs the
// batch through a bounded worker pool and returns a report with one
// outcome per target. A failing target never aborts the batch.
package engine

// Target describes one installable unit submitted to the engine.
type Target struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"` // Optional hint, e.g. a Go module path
	Label  string `json:"label,omitempty"`  // Optional human-readable label
}

// NewTarget creates a Target with just a name.
func NewTarget(name string) Target {
	return Target{Name: name}
}

// Display returns the label if set, otherwise the name.
func (t Target) Display() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Name
}

// Batch is an ordered list of targets submitted together. Submission
// order is preserved in report listings even though execution order
// across the pool is not.
type Batch []Target

// NewBatch builds a batch from plain package names.
func NewBatch(names ...string) Batch {
	batch := make(Batch, 0, len(names))
	for _, name := range names {
		batch = append(batch, Target{Name: name})
	}
	return batch
}

// Names returns the target names in submission order.
func (b Batch) Names() []string {
	names := make([]string, 0, len(b))
	for _, t := range b {
		names = append(names, t.Name)
	}
	return names
}
