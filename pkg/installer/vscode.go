package installer

import (
	"context"
	"strings"

	"rig/pkg/engine"
)

// VSCode installs Visual Studio Code extensions through the `code`
// command-line tool.
type VSCode struct {
	*Base
}

// NewVSCode creates the VS Code extension adapter.
func NewVSCode() *VSCode {
	return &VSCode{Base: NewBase("vscode", "VS Code extensions", "code")}
}

// IsPresent checks the installed extension list. Extension IDs are
// matched case-insensitively, mirroring how code treats them.
func (v *VSCode) IsPresent(ctx context.Context, t engine.Target) (bool, error) {
	out, err := v.Executor().OutputQuiet(ctx, v.Binary(), "--list-extensions")
	if err != nil {
		return false, nil
	}

	want := strings.ToLower(t.Name)
	for _, line := range strings.Split(out, "\n") {
		if strings.ToLower(strings.TrimSpace(line)) == want {
			return true, nil
		}
	}
	return false, nil
}

// Install installs the extension.
func (v *VSCode) Install(ctx context.Context, t engine.Target) error {
	out, err := v.Executor().OutputCombined(ctx, v.Binary(), "--install-extension", t.Name)
	if err != nil {
		return failure(out, err)
	}
	return nil
}
