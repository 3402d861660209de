package staging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllocateSeedsContent(t *testing.T) {
	area := NewArea(t.TempDir())

	f, err := area.Allocate([]byte("dear diary"))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer func() { _ = f.Release() }()

	if !strings.HasPrefix(filepath.Base(f.Path()), "deary-") {
		t.Errorf("unexpected staging file name %q", f.Path())
	}

	data, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "dear diary" {
		t.Errorf("content = %q, expected %q", data, "dear diary")
	}

	info, err := os.Stat(f.Path())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, expected 0600", perm)
	}
}

func TestAllocateEmpty(t *testing.T) {
	area := NewArea(t.TempDir())

	f, err := area.Allocate(nil)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer func() { _ = f.Release() }()

	data, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
}

func TestAllocateUniqueNames(t *testing.T) {
	area := NewArea(t.TempDir())

	a, err := area.Allocate(nil)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer func() { _ = a.Release() }()

	b, err := area.Allocate(nil)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer func() { _ = b.Release() }()

	if a.Path() == b.Path() {
		t.Errorf("two allocations share path %s", a.Path())
	}
}

func TestReleaseRemovesFile(t *testing.T) {
	dir := t.TempDir()
	area := NewArea(dir)

	f, err := area.Allocate([]byte("secret"))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if err := f.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(f.Path()); !os.IsNotExist(err) {
		t.Errorf("staging file still present after Release: %v", err)
	}

	// Second release is a no-op.
	if err := f.Release(); err != nil {
		t.Errorf("second Release failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty staging dir, found %d entries", len(entries))
	}
}

func TestReleaseToleratesMissingFile(t *testing.T) {
	area := NewArea(t.TempDir())

	f, err := area.Allocate([]byte("secret"))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if err := os.Remove(f.Path()); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if err := f.Release(); err != nil {
		t.Errorf("Release of a vanished file should succeed, got %v", err)
	}
}

func TestAllocateMissingDir(t *testing.T) {
	area := NewArea(filepath.Join(t.TempDir(), "does-not-exist"))

	if _, err := area.Allocate(nil); err == nil {
		t.Fatal("expected error allocating in a missing directory")
	}
}

func TestNewAreaDefaultsDir(t *testing.T) {
	area := NewArea("")
	if area.Dir != DefaultDir() {
		t.Errorf("Dir = %q, expected %q", area.Dir, DefaultDir())
	}
}
