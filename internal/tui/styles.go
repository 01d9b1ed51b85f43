// Package tui renders a live progress view for provisioning runs.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - matches the CLI colors
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorAccent  = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles contains all the lipgloss styles used in the progress view.
type Styles struct {
	Title     lipgloss.Style
	Ecosystem lipgloss.Style
	Target    lipgloss.Style
	Installed lipgloss.Style
	Present   lipgloss.Style
	Failed    lipgloss.Style
	Cancelled lipgloss.Style
	Reason    lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1),
		Ecosystem: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginTop(1),
		Target:    lipgloss.NewStyle(),
		Installed: lipgloss.NewStyle().Foreground(ColorSuccess),
		Present:   lipgloss.NewStyle().Foreground(ColorMuted),
		Failed:    lipgloss.NewStyle().Foreground(ColorError),
		Cancelled: lipgloss.NewStyle().Foreground(ColorWarning),
		Reason:    lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
	}
}
