package installer

import (
	"context"

	"rig/pkg/engine"
)

// Brew installs Homebrew formulae.
type Brew struct {
	*Base
}

// NewBrew creates the Homebrew formula adapter.
func NewBrew() *Brew {
	return &Brew{Base: NewBase("brew", "Homebrew", "brew")}
}

// IsPresent checks whether the formula is installed.
func (b *Brew) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	// brew list exits non-zero when the formula is not installed.
	_, err := b.Executor().OutputQuiet(ctx, b.Binary(), "list", "--formula", "--", t.Name)
	return err == nil, nil
}

// Install installs the formula.
func (b *Brew) Install(ctx context.Context, t engine.Target) error {
	out, err := b.Executor().OutputCombined(ctx, b.Binary(), "install", "--formula", t.Name)
	if err != nil {
		return failure(out, err)
	}
	return nil
}
