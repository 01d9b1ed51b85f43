package engine

import (
	"context"
	"time"
)

const reasonCancelled = "cancelled"

// Dispatch runs the attempt policy over a single target and produces
// exactly one outcome. Installer failures never escape as errors; they
// are captured into the outcome so one bad target cannot abort a
// batch.
//
// Cancellation is cooperative: it is observed before the first
// attempt and during backoff sleeps, never mid-install, so the
// underlying package manager is not left with a half-applied
// transaction.
func Dispatch(ctx context.Context, installer Installer, t Target, policy AttemptPolicy) Outcome {
	p := policy.normalized()

	present, err := installer.IsPresent(ctx, t)
	if err == nil && present {
		return Outcome{Target: t, Status: StatusAlreadyPresent}
	}
	// A failing presence check is treated as "not installed"; the
	// install attempt settles it either way.

	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return Outcome{Target: t, Status: StatusCancelled, Reason: reasonCancelled, Attempts: attempt - 1}
		}

		err := installer.Install(ctx, t)
		if err == nil {
			return Outcome{Target: t, Status: StatusInstalled, Attempts: attempt}
		}

		if IsAlreadyExists(err) {
			// The manager says the artifact already exists under
			// another path. Not a failure.
			return Outcome{Target: t, Status: StatusAlreadyPresent, Reason: err.Error(), Attempts: attempt}
		}

		if !p.IsRetryable(err) || attempt >= p.MaxAttempts {
			return Outcome{Target: t, Status: StatusFailed, Reason: err.Error(), Attempts: attempt}
		}

		select {
		case <-time.After(p.Backoff(attempt)):
		case <-ctx.Done():
			return Outcome{Target: t, Status: StatusCancelled, Reason: reasonCancelled, Attempts: attempt}
		}
	}
}
