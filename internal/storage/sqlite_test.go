package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game  string
		score int
		label string
	}{
		{"letters", 30, "NIGE"},
		{"letters", 5, "NI"},
		{"letters", 50, "NNIGEL"},
		{"viewer", 1, ""},
	} {
		if _, err := store.SaveScore(s.game, s.score, s.label); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("letters", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending, labels attached
	if scores[0].Score != 50 || scores[0].Label != "NNIGEL" {
		t.Errorf("Expected top entry 50/NNIGEL, got %d/%s", scores[0].Score, scores[0].Label)
	}
	if scores[1].Score != 30 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	viewerScores, err := store.TopScores("viewer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(viewerScores) != 1 {
		t.Errorf("Expected 1 viewer score, got %d", len(viewerScores))
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, "")
	}
	store.SaveScore("test", 500, "second")

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Equal scores keep the order they were recorded in
	if scores[0].Score != 500 || scores[0].Label != "" || scores[1].Label != "second" || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("letters")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("letters", 10, "NI")
	store.SaveScore("letters", 40, "NIGEL")
	store.SaveScore("letters", 20, "NIG")

	high, err = store.HighScore("letters")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("Expected high score of 40, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("letters", 100, "")
	store.SaveScore("letters", 200, "")
	store.SaveScore("viewer", 300, "")

	n, err := store.ClearScores("letters")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cleared scores, got %d", n)
	}

	lettersScores, _ := store.TopScores("letters", 10)
	if len(lettersScores) != 0 {
		t.Errorf("Expected 0 letters scores after clear, got %d", len(lettersScores))
	}

	viewerScores, _ := store.TopScores("viewer", 10)
	if len(viewerScores) != 1 {
		t.Errorf("Viewer scores should not be affected by clearing letters")
	}
}

func TestStoreAllAndLabelScores(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score int
		label string
	}{
		{30, "NIG"}, {70, "NIGEL"}, {50, "nigel"}, {10, "NI"}, {40, "NIGEL"},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("letters", r.score, r.label); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	all, err := store.AllScores("letters")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != len(runs) || all[0].Score != 70 || all[len(all)-1].Score != 10 {
		t.Errorf("AllScores() = %+v", all)
	}

	named, err := store.LabelScores("letters", "Nigel")
	if err != nil {
		t.Fatalf("LabelScores() failed: %v", err)
	}
	want := []int{70, 50, 40}
	if len(named) != len(want) {
		t.Fatalf("LabelScores() returned %d entries, expected %d", len(named), len(want))
	}
	for i, e := range named {
		if e.Score != want[i] {
			t.Errorf("entry %d score = %d, expected %d", i, e.Score, want[i])
		}
	}

	none, err := store.LabelScores("viewer", "NIGEL")
	if err != nil || len(none) != 0 {
		t.Errorf("other games should have no named scores, got %v (%v)", none, err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("letters")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("letters", 10, "NI")
	store.SaveScore("letters", 30, "NIGE")
	store.SaveScore("viewer", 7, "")

	stats, err := store.GetGameStats("letters")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["viewer"].HighScore != 7 {
		t.Errorf("Unexpected per-game stats %+v", all)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// A scores table from before labels existed
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('letters', 15);`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("letters", 25, "NIG"); err != nil {
		t.Fatalf("SaveScore() after migration failed: %v", err)
	}
	scores, err := store.TopScores("letters", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Label != "NIG" || scores[1].Label != "" {
		t.Errorf("Unexpected scores after migration: %+v", scores)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
