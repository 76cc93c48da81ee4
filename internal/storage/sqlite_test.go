package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/balloon-puff/internal/core"
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

func run(difficulty string, score, frames int) core.RunSummary {
	return core.RunSummary{
		GameID:     "balloon",
		Difficulty: difficulty,
		Theme:      "mountain",
		Seed:       42,
		Score:      score,
		Frames:     frames,
		Cause:      "ground",
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(run("easy", 3, 900))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() returned an empty ID")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Difficulty != "easy" || got.Theme != "mountain" || got.Seed != 42 ||
		got.Score != 3 || got.Frames != 900 || got.Cause != "ground" {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	_, err = store.RunByID("missing")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("RunByID(missing) error = %v, want sql.ErrNoRows", err)
	}
}

func TestStoreTopRunsOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("easy", 1, 500))
	store.SaveRun(run("easy", 4, 1500))
	store.SaveRun(run("easy", 4, 1800))
	store.SaveRun(run("hard", 9, 2000))

	runs, err := store.TopRuns("easy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 easy runs, got %d", len(runs))
	}

	// Score first, frames break ties
	if runs[0].Frames != 1800 || runs[1].Frames != 1500 || runs[2].Score != 1 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Difficulty != "hard" {
		t.Errorf("TopRuns(all) = %+v", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(run("normal", i+1, 100))
	}

	runs, err := store.TopRuns("normal", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 5 || runs[1].Score != 4 || runs[2].Score != 3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestRun("easy")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best run for an empty store")
	}

	store.SaveRun(run("easy", 2, 100))
	store.SaveRun(run("easy", 7, 100))

	best, ok, err := store.BestRun("easy")
	if err != nil || !ok {
		t.Fatalf("BestRun() = %v, %v", ok, err)
	}
	if best.Score != 7 {
		t.Errorf("Expected best score 7, got %d", best.Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("easy", 2, 100))
	store.SaveRun(run("easy", 4, 300))
	store.SaveRun(run("hard", 1, 50))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	easy := stats["easy"]
	if easy.Runs != 2 || easy.BestScore != 4 || easy.AvgScore != 3 || easy.TotalFrames != 400 {
		t.Errorf("easy stats = %+v", easy)
	}
	if stats["hard"].Runs != 1 {
		t.Errorf("hard stats = %+v", stats["hard"])
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("easy", 1, 100))
	store.SaveRun(run("easy", 2, 100))
	store.SaveRun(run("hard", 3, 100))

	if err := store.ClearRuns("easy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	easy, _ := store.TopRuns("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(easy))
	}
	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard runs should not be affected by clearing easy")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	all, _ := store.TopRuns("", 10)
	if len(all) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(all))
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
