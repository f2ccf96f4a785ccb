package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSaveRun(t *testing.T, store *Store, r Run) string {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("custom", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].PackID != "classic" {
		t.Errorf("Expected pack classic, got %q", scores[0].PackID)
	}

	custom, err := store.TopScores("custom", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(custom) != 1 {
		t.Errorf("Expected 1 custom score, got %d", len(custom))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*10)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty pack, got %d", high)
	}

	store.SaveScore("classic", 7)
	store.SaveScore("classic", 12)
	store.SaveScore("classic", 9)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score of 12, got %d", high)
	}
}

func TestStoreSaveRunAndRunByID(t *testing.T) {
	store := openStore(t)

	id := mustSaveRun(t, store, Run{
		PackID:     "classic",
		LevelIndex: 2,
		LevelName:  "Fire Rain",
		Status:     "won",
		Coins:      3,
		Ticks:      600,
		Duration:   10500 * time.Millisecond,
	})
	if id == "" {
		t.Fatal("SaveRun() should generate an ID")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.LevelName != "Fire Rain" || got.Coins != 3 || got.Ticks != 600 {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.Duration != 10500*time.Millisecond {
		t.Errorf("Expected duration 10.5s, got %v", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreSaveRunKeepsID(t *testing.T) {
	store := openStore(t)

	id := mustSaveRun(t, store, Run{ID: "fixed", PackID: "p", Status: "lost"})
	if id != "fixed" {
		t.Errorf("Expected ID fixed, got %q", id)
	}
	if _, err := store.SaveRun(Run{ID: "fixed", PackID: "p", Status: "lost"}); err == nil {
		t.Error("Saving a duplicate ID should fail")
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openStore(t)

	var recorder platformer.RunRecorder = store
	err := recorder.RecordRun(platformer.RunRecord{
		PackID:     "classic",
		LevelIndex: 0,
		LevelName:  "First Steps",
		Status:     sim.StatusWon,
		Coins:      3,
		Ticks:      300,
		Duration:   5 * time.Second,
	})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Status != "won" || runs[0].LevelName != "First Steps" {
		t.Errorf("Unexpected run: %+v", runs[0])
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openStore(t)

	mustSaveRun(t, store, Run{PackID: "classic", LevelIndex: 0, Status: "won", Ticks: 500, LevelName: "slow"})
	mustSaveRun(t, store, Run{PackID: "classic", LevelIndex: 0, Status: "won", Ticks: 300, LevelName: "fast"})
	mustSaveRun(t, store, Run{PackID: "classic", LevelIndex: 0, Status: "lost", Ticks: 10})
	mustSaveRun(t, store, Run{PackID: "classic", LevelIndex: 1, Status: "won", Ticks: 900, LevelName: "second"})
	mustSaveRun(t, store, Run{PackID: "classic", LevelIndex: 2, Status: "lost", Ticks: 50})
	mustSaveRun(t, store, Run{PackID: "custom", LevelIndex: 0, Status: "won", Ticks: 1})

	runs, err := store.BestRuns("classic")
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 best runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].LevelIndex != 0 || runs[0].LevelName != "fast" {
		t.Errorf("Expected fastest win for level 0, got %+v", runs[0])
	}
	if runs[1].LevelIndex != 1 || runs[1].Ticks != 900 {
		t.Errorf("Expected level 1 win, got %+v", runs[1])
	}
}

func TestStoreBestRunsTieKeepsFirst(t *testing.T) {
	store := openStore(t)

	first := mustSaveRun(t, store, Run{PackID: "p", LevelIndex: 0, Status: "won", Ticks: 100})
	mustSaveRun(t, store, Run{PackID: "p", LevelIndex: 0, Status: "won", Ticks: 100})

	runs, err := store.BestRuns("p")
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != first {
		t.Errorf("Expected the earlier of two tied runs, got %+v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openStore(t)

	for i := range 5 {
		mustSaveRun(t, store, Run{PackID: "p", LevelIndex: i, Status: "lost"})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int{4, 3, 2} {
		if runs[i].LevelIndex != want {
			t.Errorf("runs[%d].LevelIndex = %d, expected %d", i, runs[i].LevelIndex, want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	store.SaveScore("classic", 100)
	store.SaveScore("custom", 300)
	mustSaveRun(t, store, Run{PackID: "classic", Status: "won"})
	mustSaveRun(t, store, Run{PackID: "custom", Status: "won"})

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("classic", 10); len(scores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(scores))
	}
	if runs, _ := store.BestRuns("classic"); len(runs) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("custom", 10); len(scores) != 1 {
		t.Error("custom scores should not be affected by clearing classic")
	}
	if runs, _ := store.BestRuns("custom"); len(runs) != 1 {
		t.Error("custom runs should not be affected by clearing classic")
	}
}

func TestStorePackStats(t *testing.T) {
	store := openStore(t)

	stats, err := store.GetPackStats("classic")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	mustSaveRun(t, store, Run{PackID: "classic", Status: "won", Coins: 3})
	mustSaveRun(t, store, Run{PackID: "classic", Status: "lost", Coins: 1})
	mustSaveRun(t, store, Run{PackID: "classic", Status: "lost"})
	store.SaveScore("classic", 4)

	stats, err = store.GetPackStats("classic")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Deaths != 2 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.Coins != 4 {
		t.Errorf("Expected 4 coins, got %d", stats.Coins)
	}
	if stats.HighScore != 4 {
		t.Errorf("Expected high score 4, got %d", stats.HighScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStorePackIDs(t *testing.T) {
	store := openStore(t)

	mustSaveRun(t, store, Run{PackID: "zeta", Status: "won"})
	mustSaveRun(t, store, Run{PackID: "alpha", Status: "won"})
	store.SaveScore("alpha", 1)
	store.SaveScore("mid", 1)

	ids, err := store.PackIDs()
	if err != nil {
		t.Fatalf("PackIDs() failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
}
