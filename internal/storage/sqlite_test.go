package storage

import (
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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTop(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ann", Score: 100, Frames: 600, Retired: 14},
		{Player: "bob", Score: 50, Frames: 300, Retired: 7},
		{Player: "ann", Score: 200, Frames: 1200, Retired: 29},
		{Player: "cid", Score: 100, Frames: 700, Retired: 13},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}

	want := []struct {
		player string
		score  int
	}{{"ann", 200}, {"ann", 100}, {"cid", 100}}
	for i, w := range want {
		if top[i].Player != w.player || top[i].Score != w.score {
			t.Errorf("top[%d] = %s/%d, expected %s/%d", i, top[i].Player, top[i].Score, w.player, w.score)
		}
	}
	if top[0].Frames != 1200 || top[0].Retired != 29 {
		t.Errorf("top[0] frames/retired = %d/%d, expected 1200/29", top[0].Frames, top[0].Retired)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveRun(Run{Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("RecentRuns() = %+v, expected scores 30, 20", recent)
	}
}

func TestStoreBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty log best = %d, expected 0", best)
	}

	store.SaveRun(Run{Score: 40})
	store.SaveRun(Run{Score: 90})

	if best, _ = store.Best(); best != 90 {
		t.Errorf("Best() = %d, expected 90", best)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Score: 40})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("expected empty log after Clear, got %d runs", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(Run{Score: 10, Frames: 100})
	store.SaveRun(Run{Score: 30, Frames: 300})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 30 || stats.AvgScore != 20 || stats.TotalFrames != 400 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{Player: "ann", Score: 999})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	if best, _ := store2.Best(); best != 999 {
		t.Errorf("persisted best = %d, expected 999", best)
	}
}
