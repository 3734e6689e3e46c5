package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	// CacheFileName is the pricing cache file inside the cache directory.
	CacheFileName = "pricing_cache.json"

	cacheDirPerm  = 0o755
	cacheFilePerm = 0o644
)

// FileStore keeps the pricing document in a single file under the cache
// directory. Writes go to a temp file and rename into place, so readers
// never observe a partial document.
type FileStore struct {
	path string
}

// NewFileStore creates a file store rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, cacheDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	return &FileStore{
		path: filepath.Join(dir, CacheFileName),
	}, nil
}

// Path returns the cache file location.
func (s *FileStore) Path() string {
	return s.path
}

// Read returns the cached document, or ErrNotExist.
func (s *FileStore) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return data, nil
}

// Write replaces the cached document atomically.
func (s *FileStore) Write(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), CacheFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}
	if err := os.Chmod(tmpName, cacheFilePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set cache file permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}

// LastModified returns the cache file's modification time, or ErrNotExist.
func (s *FileStore) LastModified(_ context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, ErrNotExist
		}
		return time.Time{}, fmt.Errorf("failed to stat cache file: %w", err)
	}
	return info.ModTime(), nil
}
