package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("blocks", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("blocks", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("blocks", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("invaders", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for blocks
	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
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

	// Retrieve top scores for invaders
	invadersScores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(invadersScores) != 1 {
		t.Errorf("Expected 1 invaders score, got %d", len(invadersScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("blocks", 100)
	store.SaveScore("blocks", 300)
	store.SaveScore("blocks", 200)

	high, err = store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("blocks", 100)
	store.SaveScore("blocks", 200)
	store.SaveScore("invaders", 300)

	// Clear only blocks scores
	err = store.ClearScores("blocks")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Blocks should be empty
	blocksScores, _ := store.TopScores("blocks", 10)
	if len(blocksScores) != 0 {
		t.Errorf("Expected 0 blocks scores after clear, got %d", len(blocksScores))
	}

	// Invaders should still have scores
	invadersScores, _ := store.TopScores("invaders", 10)
	if len(invadersScores) != 1 {
		t.Errorf("Invaders scores should not be affected by clearing blocks")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
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

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SavePlayerScore("blocks", "alice", 1500); err != nil {
		t.Fatalf("SavePlayerScore() failed: %v", err)
	}
	if _, err := store.SaveScore("blocks", 300); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[1].Player != "" {
		t.Errorf("Unexpected players: %q, %q", scores[0].Player, scores[1].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 400, 900} {
		store.SaveScore("blocks", s)
	}

	tests := []struct {
		score int
		want  int
	}{
		{1000, 1},
		{900, 1},
		{500, 2},
		{50, 4},
	}
	for _, tt := range tests {
		got, err := store.Rank("blocks", tt.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Rank(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("blocks", 100)
	store.SaveScore("blocks", 300)
	store.SaveScore("invaders", 40)

	stats, err := store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["invaders"].HighScore != 40 {
		t.Errorf("Unexpected all-games stats: %+v", all)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		t.Fatal(err)
	}
	db.Exec(`INSERT INTO scores (game_id, score) VALUES ('blocks', 700)`)
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 || scores[0].Player != "" {
		t.Errorf("Old rows should survive migration, got %+v", scores)
	}
}
