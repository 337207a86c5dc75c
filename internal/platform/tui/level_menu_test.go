package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testLevelItems() []LevelItem {
	return []LevelItem{
		{ID: "01-nigel", Name: "Nigel", Target: "NIGEL", Pickups: 7, Conveyor: true},
		{ID: "02-ada", Name: "Ada", Target: "ADA", Pickups: 3},
	}
}

func levelUpdate(t *testing.T, m LevelMenuModel, msg tea.Msg) (LevelMenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(LevelMenuModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return lm, cmd
}

func TestLevelItemDescription(t *testing.T) {
	items := testLevelItems()
	if got := items[0].Description(); !strings.Contains(got, "NIGEL") || !strings.Contains(got, "conveyor") {
		t.Errorf("Description() = %q", got)
	}
	if got := items[1].Description(); strings.Contains(got, "conveyor") {
		t.Errorf("level without mover should not mention it: %q", got)
	}
	if got := items[1].FilterValue(); got != "Ada ADA" {
		t.Errorf("FilterValue() = %q", got)
	}
}

func TestLevelMenuSelect(t *testing.T) {
	m := NewLevelMenuModel(testLevelItems(), 80, 24)

	m, _ = levelUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := levelUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().ID != "02-ada" {
		t.Fatalf("Selected() = %+v, expected 02-ada", m.Selected())
	}
	if !isQuit(cmd) {
		t.Error("selecting should end the picker")
	}
}

func TestLevelMenuBackAndQuit(t *testing.T) {
	m, cmd := levelUpdate(t, NewLevelMenuModel(testLevelItems(), 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() || m.IsQuitting() || !isQuit(cmd) {
		t.Error("esc should go back")
	}

	m, _ = levelUpdate(t, NewLevelMenuModel(testLevelItems(), 80, 24), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestLevelMenuEmpty(t *testing.T) {
	m, cmd := levelUpdate(t, NewLevelMenuModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil || cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
	if !strings.Contains(m.View(), "L E V E L S") {
		t.Error("empty picker should still show its title")
	}
}
