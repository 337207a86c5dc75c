package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return sm
}

func TestScoreboardListsScoredGames(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	var ids []string
	for _, g := range m.games {
		ids = append(ids, g.ID)
	}
	joined := strings.Join(ids, ",")
	if !strings.Contains(joined, "letters") || !strings.Contains(joined, fakeID) {
		t.Errorf("games = %v, expected letters and %s", ids, fakeID)
	}
}

func TestScoreboardRowsAndStats(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []struct {
		score int
		label string
	}{{30, "NIGEL"}, {50, "NNIGEL"}, {10, ""}} {
		if _, err := store.SaveScore("letters", s.score, s.label); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.games[m.current].ID != "letters" {
		t.Fatalf("first game = %q, expected letters", m.games[m.current].ID)
	}

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, expected 3", len(rows))
	}
	if rows[0][1] != "50" || rows[0][2] != "NNIGEL" {
		t.Errorf("top row = %v", rows[0])
	}
	if rows[2][2] != "-" {
		t.Errorf("unlabeled score should show a dash, got %q", rows[2][2])
	}
	if m.stats == nil || m.stats.HighScore != 50 || m.stats.GamesCount != 3 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	if !strings.Contains(view, "NNIGEL") || !strings.Contains(view, "Best 50") {
		t.Error("view should show the names and the stats line")
	}
}

func TestScoreboardSwitchGameWraps(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("letters", 20, "NI"); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	n := len(m.games)

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current != n-1 {
		t.Errorf("prev from first should wrap to %d, got %d", n-1, m.current)
	}
	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != 0 || len(m.scores) != 1 {
		t.Errorf("next should wrap back to letters (current=%d, scores=%d)", m.current, len(m.scores))
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := scoreboardUpdate(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}

	m = scoreboardUpdate(t, NewScoreboardModel(nil, 80, 24), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
