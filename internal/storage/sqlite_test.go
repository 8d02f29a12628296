package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadSlot(t *testing.T) {
	store := openTemp(t)

	if err := store.SaveSlot("alpha", 1, 10, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}
	if err := store.SaveSlot("alpha", 3, 120, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("SaveSlot() overwrite failed: %v", err)
	}

	data, err := store.LoadSlot("alpha")
	if err != nil {
		t.Fatalf("LoadSlot() failed: %v", err)
	}
	if !bytes.Equal(data, []byte(`{"v":2}`)) {
		t.Errorf("LoadSlot() = %s; want the latest save", data)
	}

	slots, err := store.ListSlots()
	if err != nil {
		t.Fatalf("ListSlots() failed: %v", err)
	}
	if len(slots) != 1 || slots[0].Depth != 3 || slots[0].Turns != 120 {
		t.Errorf("ListSlots() = %+v", slots)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	store := openTemp(t)
	if _, err := store.LoadSlot("ghost"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("err = %v; want ErrSlotNotFound", err)
	}
}

func TestDeleteSlot(t *testing.T) {
	store := openTemp(t)
	if err := store.SaveSlot("beta", 2, 5, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteSlot("beta"); err != nil {
		t.Fatalf("DeleteSlot() failed: %v", err)
	}
	if err := store.DeleteSlot("beta"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("second delete err = %v; want ErrSlotNotFound", err)
	}
	slots, err := store.ListSlots()
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("slots = %+v; want none", slots)
	}
}

func TestBestRunsOrdering(t *testing.T) {
	store := openTemp(t)
	runs := []struct {
		depth uint32
		turns int
		cause string
	}{
		{2, 50, "Orc"},
		{5, 300, "Troll"},
		{5, 400, ""},
		{1, 10, "Orc"},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r.depth, r.turns, r.cause, []byte("{}")); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns(2)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(best))
	}
	if best[0].Turns != 400 || best[1].CauseOfDeath != "Troll" {
		t.Errorf("BestRuns() = %+v", best)
	}
}
