package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kvistgaard/kinbox/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieveTrail(t *testing.T) {
	store := openTestStore(t)

	trail := []core.Vec2{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 5.5}}
	id, err := store.SaveTrail("morning run", trail)
	if err != nil {
		t.Fatalf("SaveTrail() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveTrail() should return a non-zero session ID")
	}

	got, err := store.Trail(id)
	if err != nil {
		t.Fatalf("Trail() failed: %v", err)
	}
	if len(got) != len(trail) {
		t.Fatalf("Trail() returned %d points, expected %d", len(got), len(trail))
	}
	for i := range trail {
		if got[i] != trail[i] {
			t.Errorf("Trail()[%d] = %v, expected %v (order must be preserved)", i, got[i], trail[i])
		}
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveTrail("first", []core.Vec2{{X: 1, Y: 1}}); err != nil {
		t.Fatalf("SaveTrail() failed: %v", err)
	}
	if _, err := store.SaveTrail("second", []core.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}); err != nil {
		t.Fatalf("SaveTrail() failed: %v", err)
	}

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Sessions() returned %d entries, expected 2", len(sessions))
	}

	// Newest first
	if sessions[0].Label != "second" {
		t.Errorf("Sessions()[0].Label = %q, expected \"second\"", sessions[0].Label)
	}
	if sessions[0].Points != 2 || sessions[1].Points != 1 {
		t.Errorf("Point counts = %d, %d, expected 2, 1", sessions[0].Points, sessions[1].Points)
	}
}

func TestStoreEmptyTrail(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveTrail("empty", nil)
	if err != nil {
		t.Fatalf("SaveTrail() with no points failed: %v", err)
	}

	trail, err := store.Trail(id)
	if err != nil {
		t.Fatalf("Trail() failed: %v", err)
	}
	if len(trail) != 0 {
		t.Errorf("Trail() returned %d points, expected none", len(trail))
	}
}

func TestStoreDeleteSession(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveTrail("doomed", []core.Vec2{{X: 1, Y: 2}})
	if err != nil {
		t.Fatalf("SaveTrail() failed: %v", err)
	}

	if err := store.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Sessions() returned %d entries after delete, expected 0", len(sessions))
	}

	trail, err := store.Trail(id)
	if err != nil {
		t.Fatalf("Trail() failed: %v", err)
	}
	if len(trail) != 0 {
		t.Errorf("Trail() returned %d points after delete, expected 0", len(trail))
	}
}

func TestStoreLongestTrail(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	longest, err := store.LongestTrail()
	if err != nil {
		t.Fatalf("LongestTrail() failed: %v", err)
	}
	if longest != 0 {
		t.Errorf("LongestTrail() = %d on empty store, expected 0", longest)
	}

	if _, err := store.SaveTrail("short", make([]core.Vec2, 3)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveTrail("long", make([]core.Vec2, 17)); err != nil {
		t.Fatal(err)
	}

	longest, err = store.LongestTrail()
	if err != nil {
		t.Fatalf("LongestTrail() failed: %v", err)
	}
	if longest != 17 {
		t.Errorf("LongestTrail() = %d, expected 17", longest)
	}
}
