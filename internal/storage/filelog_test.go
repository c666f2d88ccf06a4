package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kvistgaard/kinbox/internal/core"
)

func TestAppendTrailFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.csv")

	trail := []core.Vec2{{X: 1, Y: 0}, {X: 2.5, Y: -40}}
	if err := AppendTrail(path, trail); err != nil {
		t.Fatalf("AppendTrail() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// One "x, y" line per point, no header, trail order.
	expected := "1, 0\n2.5, -40\n"
	if string(data) != expected {
		t.Errorf("log content = %q, expected %q", string(data), expected)
	}
}

func TestAppendTrailAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.csv")

	if err := AppendTrail(path, []core.Vec2{{X: 1, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := AppendTrail(path, []core.Vec2{{X: 2, Y: 2}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "1, 1\n2, 2\n" {
		t.Errorf("log content = %q, expected both sessions appended", string(data))
	}
}

func TestAppendTrailEmptyCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.csv")

	if err := AppendTrail(path, nil); err != nil {
		t.Fatalf("AppendTrail() with no points failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("log should be empty, got %q", string(data))
	}
}

func TestAppendTrailUnwritablePathFails(t *testing.T) {
	// The parent directory does not exist; the flush error must surface.
	path := filepath.Join(t.TempDir(), "missing", "position.csv")

	if err := AppendTrail(path, []core.Vec2{{X: 1, Y: 1}}); err == nil {
		t.Error("AppendTrail() to a missing directory should fail")
	}
}
