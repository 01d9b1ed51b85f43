package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the progress view for the given plan and returns the
// running program. The caller feeds it OutcomeMsg values via Send and
// a final DoneMsg, then waits for it to exit.
func Run(plan []Ecosystem) *tea.Program {
	p := tea.NewProgram(NewModel(plan))
	go func() {
		_, _ = p.Run() //nolint:errcheck
	}()
	return p
}
