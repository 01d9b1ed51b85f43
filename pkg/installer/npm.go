package installer

import (
	"context"

	"rig/pkg/engine"
)

// Npm installs global npm packages.
type Npm struct {
	*Base
}

// NewNpm creates the npm adapter.
func NewNpm() *Npm {
	return &Npm{Base: NewBase("npm", "npm (global)", "npm")}
}

// IsPresent checks whether the package is installed globally.
func (n *Npm) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	// npm ls exits non-zero when the package is absent.
	_, err := n.Executor().OutputQuiet(ctx, n.Binary(), "ls", "-g", "--depth=0", t.Name)
	return err == nil, nil
}

// Install installs the package globally.
func (n *Npm) Install(ctx context.Context, t engine.Target) error {
	out, err := n.Executor().OutputCombined(ctx, n.Binary(), "install", "-g", t.Name)
	if err != nil {
		return failure(out, err)
	}
	return nil
}
