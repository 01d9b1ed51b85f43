// Package installer implements concrete package-ecosystem adapters
// behind the engine's Installer seam.
package installer

import (
	"os/exec"
	"strings"

	"rig/internal/executor"
	"rig/pkg/engine"
)

// Adapter couples the engine's installer capability with ecosystem
// metadata so the CLI can report on and filter by availability.
type Adapter interface {
	engine.Installer

	// Name returns the short ecosystem identifier (e.g. "brew", "npm").
	Name() string

	// DisplayName returns a human-readable name.
	DisplayName() string

	// IsAvailable returns true if the underlying tool is installed.
	IsAvailable() bool
}

// Base provides the shared plumbing for all adapters.
type Base struct {
	name        string
	displayName string
	binary      string
	exec        *executor.Executor
}

// NewBase creates a Base with the given identity and binary.
func NewBase(name, displayName, binary string) *Base {
	return &Base{
		name:        name,
		displayName: displayName,
		binary:      binary,
		exec:        executor.New(false, false),
	}
}

// Name returns the short identifier for this adapter.
func (b *Base) Name() string {
	return b.name
}

// DisplayName returns the human-readable name.
func (b *Base) DisplayName() string {
	return b.displayName
}

// Binary returns the primary binary name for this adapter.
func (b *Base) Binary() string {
	return b.binary
}

// SetBinary changes the binary to use.
func (b *Base) SetBinary(binary string) {
	b.binary = binary
}

// IsAvailable returns true if the adapter's binary is on PATH.
func (b *Base) IsAvailable() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

// Executor returns the executor instance.
func (b *Base) Executor() *executor.Executor {
	return b.exec
}

// SetExecutor sets the executor instance.
func (b *Base) SetExecutor(exec *executor.Executor) {
	b.exec = exec
}

// failure converts a command's combined output and error into the
// engine's structured failure. The last non-empty output line usually
// carries the package manager's own message.
func failure(output string, err error) *engine.Failure {
	reason := lastLine(output)
	if reason == "" && err != nil {
		reason = err.Error()
	}
	return &engine.Failure{Reason: reason}
}

func lastLine(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
