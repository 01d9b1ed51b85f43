package installer

import (
	"context"
	"errors"
	"testing"

	"rig/internal/executor"
	"rig/pkg/engine"
)

// TestAdapterInterface verifies all adapters implement Adapter and
// carry sane metadata.
func TestAdapterInterface(t *testing.T) {
	adapters := []Adapter{
		NewBrew(),
		NewCask(),
		NewNpm(),
		NewPipx(),
		NewGem(),
		NewGoBin(),
		NewVSCode(),
	}

	for _, a := range adapters {
		t.Run(a.Name(), func(t *testing.T) {
			if a.Name() == "" {
				t.Error("Name() should not be empty")
			}
			if a.DisplayName() == "" {
				t.Error("DisplayName() should not be empty")
			}
			// Must not panic regardless of what is installed here.
			_ = a.IsAvailable()
		})
	}
}

func TestAdapterNames(t *testing.T) {
	tests := []struct {
		adapter Adapter
		name    string
		binary  string
	}{
		{NewBrew(), "brew", "brew"},
		{NewCask(), "cask", "brew"},
		{NewNpm(), "npm", "npm"},
		{NewPipx(), "pip", "pipx"},
		{NewGem(), "gem", "gem"},
		{NewGoBin(), "go", "go"},
		{NewVSCode(), "vscode", "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.adapter.Name(); got != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, got)
			}
			base, ok := tt.adapter.(interface{ Binary() string })
			if !ok {
				t.Fatal("adapter should expose Binary()")
			}
			if got := base.Binary(); got != tt.binary {
				t.Errorf("expected binary %q, got %q", tt.binary, got)
			}
		})
	}
}

func TestInstallDryRun(t *testing.T) {
	dry := executor.New(true, false)

	adapters := []Adapter{NewBrew(), NewCask(), NewNpm(), NewPipx(), NewGem(), NewVSCode()}
	for _, a := range adapters {
		t.Run(a.Name(), func(t *testing.T) {
			a.(interface{ SetExecutor(*executor.Executor) }).SetExecutor(dry)
			if err := a.Install(context.Background(), engine.NewTarget("example")); err != nil {
				t.Errorf("dry-run install should not fail, got %v", err)
			}
		})
	}
}

func TestGoBinInstallRequiresModulePath(t *testing.T) {
	g := NewGoBin()
	g.SetExecutor(executor.New(true, false))

	err := g.Install(context.Background(), engine.NewTarget("gopls"))
	if err == nil {
		t.Fatal("expected an error for a target without a module path")
	}
	var f *engine.Failure
	if !errors.As(err, &f) {
		t.Errorf("expected a *engine.Failure, got %T", err)
	}

	// With a module path, dry-run succeeds.
	err = g.Install(context.Background(), engine.Target{Name: "gopls", Source: "golang.org/x/tools/gopls"})
	if err != nil {
		t.Errorf("dry-run install with module path should not fail, got %v", err)
	}
}

func TestCaskAlreadyExists(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{
			"app exists outside brew",
			"Error: It seems there is already an App at '/Applications/iTerm.app'.",
			true,
		},
		{
			"binary exists",
			"Error: It seems there is already a Binary at '/usr/local/bin/docker'.",
			true,
		},
		{
			"cask already installed",
			"Warning: Cask 'iterm2' is already installed.",
			true,
		},
		{
			"genuine failure",
			"Error: Cask 'nosuch' is unavailable: No Cask with this name exists.",
			false,
		},
		{"empty output", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := caskAlreadyExists(tt.output); got != tt.want {
				t.Errorf("caskAlreadyExists(%q) = %v, want %v", tt.output, got, tt.want)
			}
		})
	}
}

func TestFailureHelper(t *testing.T) {
	f := failure("Downloading...\nError: formula not found\n", errors.New("exit status 1"))
	if f.Reason != "Error: formula not found" {
		t.Errorf("expected last output line as reason, got %q", f.Reason)
	}

	f = failure("", errors.New("exit status 1"))
	if f.Reason != "exit status 1" {
		t.Errorf("expected error fallback, got %q", f.Reason)
	}
}
