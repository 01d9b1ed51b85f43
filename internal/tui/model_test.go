package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rig/pkg/engine"
)

func testPlan() []Ecosystem {
	return []Ecosystem{
		{Name: "brew", Targets: engine.NewBatch("git", "curl")},
		{Name: "npm", Targets: engine.NewBatch("typescript")},
	}
}

func TestModelTracksOutcomes(t *testing.T) {
	m := NewModel(testPlan())

	if m.total != 3 {
		t.Fatalf("expected 3 targets, got %d", m.total)
	}

	m.record(OutcomeMsg{Ecosystem: "brew", Outcome: engine.Outcome{
		Target: engine.NewTarget("git"), Status: engine.StatusInstalled, Attempts: 1,
	}})
	m.record(OutcomeMsg{Ecosystem: "npm", Outcome: engine.Outcome{
		Target: engine.NewTarget("typescript"), Status: engine.StatusFailed, Reason: "registry down", Attempts: 3,
	}})

	if m.finished != 2 {
		t.Errorf("expected 2 finished, got %d", m.finished)
	}
	if m.counts.Installed != 1 || m.counts.Failed != 1 {
		t.Errorf("unexpected counts: %+v", m.counts)
	}
}

func TestModelIgnoresUnknownAndDuplicate(t *testing.T) {
	m := NewModel(testPlan())

	m.record(OutcomeMsg{Ecosystem: "gem", Outcome: engine.Outcome{
		Target: engine.NewTarget("colorls"), Status: engine.StatusInstalled,
	}})
	if m.finished != 0 {
		t.Error("unknown ecosystem should be ignored")
	}

	o := OutcomeMsg{Ecosystem: "brew", Outcome: engine.Outcome{
		Target: engine.NewTarget("git"), Status: engine.StatusInstalled,
	}}
	m.record(o)
	m.record(o)
	if m.finished != 1 {
		t.Errorf("duplicate outcome must not double-count, got %d", m.finished)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testPlan())
	m.record(OutcomeMsg{Ecosystem: "brew", Outcome: engine.Outcome{
		Target: engine.NewTarget("git"), Status: engine.StatusFailed, Reason: "mirror down", Attempts: 3,
	}})

	view := m.View()
	for _, want := range []string{"brew", "npm", "git", "curl", "typescript", "mirror down", "1/3 done"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := NewModel(testPlan())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !updated.(*Model).Quitting() {
		t.Error("model should report quitting")
	}
}

func TestModelDone(t *testing.T) {
	m := NewModel(testPlan())

	updated, cmd := m.Update(DoneMsg{})
	if cmd == nil {
		t.Fatal("DoneMsg should quit the program")
	}
	view := updated.(*Model).View()
	if !strings.Contains(view, "complete") {
		t.Errorf("done view should say complete:\n%s", view)
	}
}
