package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

	runs := []ScoreEntry{
		{GameID: "breaker", Score: 100, Stage: 1, Preset: "normal", Duration: 45},
		{GameID: "breaker", Score: 50, Stage: 1, Preset: "easy", Duration: 30},
		{GameID: "breaker", Score: 200, Stage: 2, Preset: "hard", Duration: 90},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("breaker", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Run metadata round-trips
	if scores[0].Stage != 2 || scores[0].Preset != "hard" || scores[0].Duration != 90 {
		t.Errorf("Top entry metadata = stage %d preset %q duration %d, expected 2/hard/90",
			scores[0].Stage, scores[0].Preset, scores[0].Duration)
	}

	// Other games are kept separate
	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("Expected 0 scores for an unplayed game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{GameID: "breaker", Score: (i + 1) * 100, Stage: 1, Preset: "normal"})
	}

	scores, err := store.TopScores("breaker", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("breaker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 100, Stage: 1, Preset: "normal"})
	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 300, Stage: 2, Preset: "normal"})
	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 200, Stage: 1, Preset: "normal"})

	high, err = store.HighScore("breaker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 100, Stage: 1, Preset: "normal"})
	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 200, Stage: 1, Preset: "normal"})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 300, Stage: 1, Preset: "normal"})

	if err := store.ClearScores("breaker"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	breakerScores, _ := store.TopScores("breaker", 10)
	if len(breakerScores) != 0 {
		t.Errorf("Expected 0 breaker scores after clear, got %d", len(breakerScores))
	}

	// Other games are not affected
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other game scores should not be affected by the clear")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty game yields zeroed stats
	stats, err := store.Stats("breaker")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || stats.BestStage != 0 {
		t.Errorf("Expected zeroed stats for empty game, got %+v", stats)
	}

	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 100, Stage: 1, Preset: "normal"})
	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 300, Stage: 3, Preset: "normal"})

	stats, err = store.Stats("breaker")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.BestStage != 3 {
		t.Errorf("Expected best stage 3, got %d", stats.BestStage)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected a last played timestamp")
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore(ScoreEntry{GameID: "breaker", Score: 123, Stage: 2, Preset: "hard"})
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	high, err := reopened.HighScore("breaker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 123 {
		t.Errorf("Expected persisted high score 123, got %d", high)
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
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
