package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fdg312/health-tracker/internal/storage/storagetest"
)

func TestFileStorageContract(t *testing.T) {
	fs, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	storagetest.Run(t, fs)
}

func TestFileStorageLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := fs.Put(context.Background(), "health-tracker-state-v2", []byte(`{}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "health-tracker-state-v2.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected a single state file, got %v", names)
	}
}

func TestFileStorageRejectsPathKeys(t *testing.T) {
	fs, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, key := range []string{"", "..", "a/b", filepath.Join("..", "escape")} {
		if err := fs.Put(context.Background(), key, []byte(`{}`)); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
