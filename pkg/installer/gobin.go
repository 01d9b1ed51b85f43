package installer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"rig/pkg/engine"
)

// GoBin installs Go command-line tools via `go install`. The target's
// Source hint carries the module path; a version suffix is appended
// when missing.
type GoBin struct {
	*Base
}

// NewGoBin creates the Go toolchain adapter.
func NewGoBin() *GoBin {
	return &GoBin{Base: NewBase("go", "Go toolchain", "go")}
}

// IsPresent checks for the installed binary on PATH or in the Go bin
// directory.
func (g *GoBin) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	if _, err := exec.LookPath(t.Name); err == nil {
		return true, nil
	}

	for _, dir := range g.binDirs(ctx) {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, t.Name)); err == nil {
			return true, nil
		}
	}
	return false, nil
}

// Install runs go install on the target's module path.
func (g *GoBin) Install(ctx context.Context, t engine.Target) error {
	module := t.Source
	if module == "" {
		return &engine.Failure{Reason: "no module path configured for " + t.Name}
	}
	if !strings.Contains(module, "@") {
		module += "@latest"
	}

	out, err := g.Executor().OutputCombined(ctx, g.Binary(), "install", module)
	if err != nil {
		return failure(out, err)
	}
	return nil
}

// binDirs returns the candidate directories go install writes to.
func (g *GoBin) binDirs(ctx context.Context) []string {
	var dirs []string
	if gobin, err := g.Executor().OutputQuiet(ctx, g.Binary(), "env", "GOBIN"); err == nil {
		dirs = append(dirs, strings.TrimSpace(gobin))
	}
	if gopath, err := g.Executor().OutputQuiet(ctx, g.Binary(), "env", "GOPATH"); err == nil {
		if p := strings.TrimSpace(gopath); p != "" {
			dirs = append(dirs, filepath.Join(p, "bin"))
		}
	}
	return dirs
}
