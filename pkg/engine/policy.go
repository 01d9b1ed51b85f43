package engine

import "time"

// Default policy values, matching the retry constants the tool has
// historically shipped with.
const (
	DefaultMaxAttempts = 3
	DefaultBackoffBase = time.Second
	DefaultConcurrency = 1
)

// AttemptPolicy governs the dispatcher's retry loop for one target.
type AttemptPolicy struct {
	// MaxAttempts is the total number of install attempts, at least 1.
	MaxAttempts int

	// Backoff returns the delay to sleep after the given 1-based
	// attempt index fails.
	Backoff func(attempt int) time.Duration

	// IsRetryable classifies a failure; returning false stops the
	// retry loop immediately.
	IsRetryable func(err error) bool
}

// DefaultPolicy returns the standard policy: three attempts with a
// linear backoff starting at one second, retrying every failure.
func DefaultPolicy() AttemptPolicy {
	return AttemptPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     LinearBackoff(DefaultBackoffBase),
		IsRetryable: RetryAll,
	}
}

// FixedBackoff sleeps the same duration between every attempt.
func FixedBackoff(d time.Duration) func(int) time.Duration {
	return func(int) time.Duration { return d }
}

// LinearBackoff sleeps base after the first failure, 2*base after the
// second, and so on.
func LinearBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		if attempt < 1 {
			attempt = 1
		}
		return time.Duration(attempt) * base
	}
}

// RetryAll classifies every failure as retryable.
func RetryAll(error) bool { return true }

// normalized fills zero-valued fields with defaults so a partially
// constructed policy is still safe to run.
func (p AttemptPolicy) normalized() AttemptPolicy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Backoff == nil {
		p.Backoff = LinearBackoff(DefaultBackoffBase)
	}
	if p.IsRetryable == nil {
		p.IsRetryable = RetryAll
	}
	return p
}
