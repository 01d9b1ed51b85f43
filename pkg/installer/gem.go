package installer

import (
	"context"
	"strings"

	"rig/pkg/engine"
)

// Gem installs Ruby gems.
type Gem struct {
	*Base
}

// NewGem creates the RubyGems adapter.
func NewGem() *Gem {
	return &Gem{Base: NewBase("gem", "RubyGems", "gem")}
}

// IsPresent checks whether the gem is installed.
func (g *Gem) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	// gem list -i prints "true"/"false" and exits accordingly.
	out, err := g.Executor().OutputQuiet(ctx, g.Binary(), "list", "-i", "^"+t.Name+"$")
	if err != nil {
		return false, nil
	}
	return strings.TrimSpace(out) == "true", nil
}

// Install installs the gem into the user directory.
func (g *Gem) Install(ctx context.Context, t engine.Target) error {
	out, err := g.Executor().OutputCombined(ctx, g.Binary(), "install", "--user-install", t.Name)
	if err != nil {
		return failure(out, err)
	}
	return nil
}
