package installer

import (
	"context"
	"strings"

	"rig/pkg/engine"
)

// Pipx installs Python command-line tools in isolated environments.
type Pipx struct {
	*Base
}

// NewPipx creates the pipx adapter.
func NewPipx() *Pipx {
	return &Pipx{Base: NewBase("pip", "pipx", "pipx")}
}

// IsPresent checks whether the tool is installed via pipx.
func (p *Pipx) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	out, err := p.Executor().OutputQuiet(ctx, p.Binary(), "list", "--short")
	if err != nil {
		return false, nil
	}

	// Each line is "name version".
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == t.Name {
			return true, nil
		}
	}
	return false, nil
}

// Install installs the tool.
func (p *Pipx) Install(ctx context.Context, t engine.Target) error {
	out, err := p.Executor().OutputCombined(ctx, p.Binary(), "install", t.Name)
	if err != nil {
		return failure(out, err)
	}
	return nil
}
