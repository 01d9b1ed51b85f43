// Package executor handles external command execution for the
// installer adapters.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Executor runs package-manager commands with optional dry-run and
// verbose modes. All target ecosystems here are user-scoped, so no
// privilege escalation is performed.
type Executor struct {
	dryRun  bool
	verbose bool
}

// New creates a new Executor with the given options.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
	}
}

// SetDryRun enables or disables dry-run mode.
func (e *Executor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// SetVerbose enables or disables verbose mode.
func (e *Executor) SetVerbose(verbose bool) {
	e.verbose = verbose
}

// DryRun reports whether dry-run mode is active.
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Run executes a command, streaming output to the terminal.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRun(name, args)
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// Output runs a command and returns its stdout.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// OutputQuiet runs a command and returns its stdout, suppressing
// stderr. Used for presence checks where a non-zero exit is routine.
// Presence checks are read-only, so they run even in dry-run mode.
func (e *Executor) OutputQuiet(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Suppress stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// OutputCombined runs a command and returns stdout and stderr
// combined. Install paths use this so failure text can be classified.
func (e *Executor) OutputCombined(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return combined.String(), err
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Printf("[dry-run] Would execute: %s %s\n", name, strings.Join(args, " "))
}
