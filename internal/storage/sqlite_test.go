package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-classics/internal/core"
)

// openTestStore opens a fresh database in a temporary directory.
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("asteroids", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("asteroids", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 300)
	store.SaveScore("asteroids", 200)

	high, err = store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreBestByMoves(t *testing.T) {
	store := openTestStore(t)

	results := []core.Result{
		{GameID: "sokoban", Variant: "Classics", Level: 1, Name: "First Push", Moves: 3, Pushes: 1},
		{GameID: "sokoban", Variant: "Classics", Level: 1, Name: "First Push", Moves: 1, Pushes: 1},
		{GameID: "sokoban", Variant: "Classics", Level: 2, Name: "Corner", Moves: 4, Pushes: 1},
		{GameID: "sokoban", Variant: "Classics", Level: 2, Name: "Corner", Moves: 4, Pushes: 2},
		{GameID: "sokoban", Variant: "Other", Level: 1, Name: "Elsewhere", Moves: 1},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestByMoves("sokoban", "Classics")
	if err != nil {
		t.Fatalf("BestByMoves() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected one best result per level, got %d", len(best))
	}
	if best[0].Level != 1 || best[0].Moves != 1 {
		t.Errorf("level 1 best = %+v", best[0])
	}
	if best[1].Level != 2 || best[1].Pushes != 1 {
		t.Errorf("level 2 best should break ties by pushes: %+v", best[1])
	}
}

func TestStoreBestByTime(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.Result{
		{GameID: "minesweeper", Variant: "beginner", Elapsed: 42 * time.Second},
		{GameID: "minesweeper", Variant: "beginner", Elapsed: 1500 * time.Millisecond},
		{GameID: "minesweeper", Variant: "advanced", Elapsed: 10 * time.Minute},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	beginner, err := store.BestByTime("minesweeper", "beginner", 10)
	if err != nil {
		t.Fatalf("BestByTime() failed: %v", err)
	}
	if len(beginner) != 2 || beginner[0].Elapsed != 1500*time.Millisecond {
		t.Errorf("beginner results = %+v", beginner)
	}

	all, err := store.BestByTime("minesweeper", "", 10)
	if err != nil {
		t.Fatalf("BestByTime() failed: %v", err)
	}
	if len(all) != 3 || all[2].Variant != "advanced" {
		t.Errorf("all results = %+v", all)
	}

	variants, err := store.Variants("minesweeper")
	if err != nil {
		t.Fatalf("Variants() failed: %v", err)
	}
	if len(variants) != 2 || variants[0] != "advanced" || variants[1] != "beginner" {
		t.Errorf("Variants() = %v", variants)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("asteroids", 100)
	store.SaveScore("other", 300)
	store.SaveResult(core.Result{GameID: "asteroids", Moves: 1})

	if err := store.ClearScores("asteroids"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("asteroids", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if results, _ := store.BestByTime("asteroids", "", 10); len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("sokoban")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.Solved != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveResult(core.Result{GameID: "sokoban", Level: 1, Moves: 5})
	store.SaveScore("sokoban", 10)

	stats, err = store.GetGameStats("sokoban")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Solved != 1 || stats.GamesCount != 1 || stats.HighScore != 10 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
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
