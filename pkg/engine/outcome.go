package engine

import "errors"

// Status is the terminal state recorded for a target.
type Status int

const (
	StatusUnknown Status = iota
	// StatusAlreadyPresent means the target was installed before the
	// batch ran; no install was attempted.
	StatusAlreadyPresent
	// StatusInstalled means an install attempt succeeded.
	StatusInstalled
	// StatusFailed means retries were exhausted or the failure was
	// classified non-retryable.
	StatusFailed
	// StatusCancelled means batch cancellation was observed before the
	// target's attempts completed.
	StatusCancelled
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusAlreadyPresent:
		return "present"
	case StatusInstalled:
		return "installed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome is the result recorded for one target. Exactly one outcome
// is produced per target per batch run.
type Outcome struct {
	Target   Target `json:"target"`
	Status   Status `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Attempts int    `json:"attempts"`
}

// Failure is the structured install error adapters return. The
// AlreadyExists flag marks the package manager reporting that the
// artifact is already on the system under another path; the
// dispatcher reclassifies such failures as StatusAlreadyPresent.
type Failure struct {
	Reason        string
	AlreadyExists bool
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Reason
}

// IsAlreadyExists reports whether err carries the already-exists
// classification flag.
func IsAlreadyExists(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.AlreadyExists
}
