package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps the document in one JSON file on local disk, the
// default backend for the companion process.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

func (fs *FileStorage) Get() ([]byte, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	return data, nil
}

// Set writes via a temp file and rename so a crash mid-write never leaves
// a truncated document behind.
func (fs *FileStorage) Set(data []byte) error {
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}

func (fs *FileStorage) Close() error {
	return nil
}
