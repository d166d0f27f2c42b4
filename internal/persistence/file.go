package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements Store on the local filesystem, one JSON file per key
// under a base directory. Writes go through a temp file and rename so a
// crash mid-write never leaves a torn document.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if needed and returns a FileStore.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create persistence directory %s: %w", basePath, err)
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) keyToPath(key string) string {
	// Keys are simple identifiers; strip path separators to keep documents
	// inside the base directory.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.basePath, safe+".json")
}

// Load retrieves the document stored at key.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	doc, err := os.ReadFile(s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return doc, nil
}

// Save durably stores the document at key.
func (s *FileStore) Save(ctx context.Context, key string, doc []byte) error {
	path := s.keyToPath(key)

	tmp, err := os.CreateTemp(s.basePath, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the document at key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.keyToPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Exists reports whether a document is stored at key.
func (s *FileStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	return true, nil
}
