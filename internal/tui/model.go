package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rig/pkg/engine"
)

// Ecosystem is one section of the progress view.
type Ecosystem struct {
	Name    string
	Targets engine.Batch
}

// Messages fed into the view while the engine runs.
type (
	// OutcomeMsg reports one finished target.
	OutcomeMsg struct {
		Ecosystem string
		Outcome   engine.Outcome
	}

	// DoneMsg signals that every batch has completed.
	DoneMsg struct{}
)

type row struct {
	target  engine.Target
	done    bool
	outcome engine.Outcome
}

type section struct {
	name string
	rows []row
}

// Model holds the progress view state.
type Model struct {
	spinner  spinner.Model
	sections []section
	index    map[string]int // "ecosystem/name" -> row position
	total    int
	finished int
	counts   engine.Counts
	done     bool
	quitting bool
	styles   *Styles
}

// NewModel builds the view for the given plan.
func NewModel(plan []Ecosystem) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	m := &Model{
		spinner: sp,
		index:   make(map[string]int),
		styles:  DefaultStyles(),
	}

	for _, eco := range plan {
		sec := section{name: eco.Name}
		for _, t := range eco.Targets {
			m.index[eco.Name+"/"+t.Name] = len(m.sections)<<16 | len(sec.rows)
			sec.rows = append(sec.rows, row{target: t})
			m.total++
		}
		m.sections = append(m.sections, sec)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case OutcomeMsg:
		m.record(msg)
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) record(msg OutcomeMsg) {
	pos, ok := m.index[msg.Ecosystem+"/"+msg.Outcome.Target.Name]
	if !ok {
		return
	}
	sec, idx := pos>>16, pos&0xffff
	if m.sections[sec].rows[idx].done {
		return
	}
	m.sections[sec].rows[idx].done = true
	m.sections[sec].rows[idx].outcome = msg.Outcome
	m.finished++

	switch msg.Outcome.Status {
	case engine.StatusAlreadyPresent:
		m.counts.Present++
	case engine.StatusInstalled:
		m.counts.Installed++
	case engine.StatusFailed:
		m.counts.Failed++
	case engine.StatusCancelled:
		m.counts.Cancelled++
	}
}

// Quitting reports whether the user asked to leave early.
func (m *Model) Quitting() bool {
	return m.quitting
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("rig apply"))
	b.WriteString("\n")

	for _, sec := range m.sections {
		b.WriteString(m.styles.Ecosystem.Render(sec.name))
		b.WriteString("\n")
		for _, r := range sec.rows {
			b.WriteString(m.renderRow(r))
			b.WriteString("\n")
		}
	}

	footer := fmt.Sprintf("%d/%d done · %d installed · %d present · %d failed",
		m.finished, m.total, m.counts.Installed, m.counts.Present, m.counts.Failed)
	if m.done {
		footer += " · complete"
	} else {
		footer += " · q to detach"
	}
	b.WriteString(m.styles.Footer.Render(footer))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderRow(r row) string {
	name := r.target.Display()
	if !r.done {
		return fmt.Sprintf("  %s %s", m.spinner.View(), m.styles.Target.Render(name))
	}

	switch r.outcome.Status {
	case engine.StatusInstalled:
		return fmt.Sprintf("  %s %s", m.styles.Installed.Render("✓"), name)
	case engine.StatusAlreadyPresent:
		return m.styles.Present.Render(fmt.Sprintf("  ○ %s (present)", name))
	case engine.StatusFailed:
		return fmt.Sprintf("  %s %s %s",
			m.styles.Failed.Render("✗"), name,
			m.styles.Reason.Render(r.outcome.Reason))
	case engine.StatusCancelled:
		return fmt.Sprintf("  %s %s", m.styles.Cancelled.Render("!"), name+" (cancelled)")
	}
	return "  " + name
}
