package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tracker.json")
	fs, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	defer fs.Close()

	data, err := fs.Get()
	if err != nil || data != nil {
		t.Fatalf("Get before any Set = (%v, %v), want (nil, nil)", data, err)
	}

	want := []byte(`{"projects":[]}`)
	if err := fs.Set(want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := fs.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Get = %s, want %s", got, want)
	}
}

func TestFileStorageSetLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	fs, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}

	if err := fs.Set([]byte("{}")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind after Set")
	}
}
