package installer

import (
	"context"
	"strings"

	"rig/pkg/engine"
)

// Cask installs Homebrew casks (macOS applications).
type Cask struct {
	*Base
}

// NewCask creates the Homebrew cask adapter.
func NewCask() *Cask {
	return &Cask{Base: NewBase("cask", "Homebrew Cask", "brew")}
}

// IsPresent checks whether the cask is installed.
func (c *Cask) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	_, err := c.Executor().OutputQuiet(ctx, c.Binary(), "list", "--cask", "--", t.Name)
	return err == nil, nil
}

// Install installs the cask. A failure caused by the application
// already existing outside Homebrew's control is flagged so the
// engine records the target as present instead of failed.
func (c *Cask) Install(ctx context.Context, t engine.Target) error {
	out, err := c.Executor().OutputCombined(ctx, c.Binary(), "install", "--cask", t.Name)
	if err != nil {
		f := failure(out, err)
		f.AlreadyExists = caskAlreadyExists(out)
		return f
	}
	return nil
}

// caskAlreadyExists recognizes brew's wording for an app that is
// already installed outside of Homebrew.
func caskAlreadyExists(output string) bool {
	return strings.Contains(output, "It seems there is already an App at") ||
		strings.Contains(output, "already a Binary at") ||
		strings.Contains(output, "is already installed")
}
