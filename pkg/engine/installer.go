package engine

import "context"

// Installer is the capability the engine requires from callers. It is
// the seam to a concrete package manager; the engine itself performs
// no I/O beyond delegating to it.
type Installer interface {
	// IsPresent reports whether the target is already installed. It
	// must be idempotent and side-effect-free.
	IsPresent(ctx context.Context, t Target) (bool, error)

	// Install performs the actual installation. Failures should be
	// returned as (or wrap) *Failure so the engine can classify them.
	Install(ctx context.Context, t Target) error
}
