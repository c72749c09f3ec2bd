package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore is a Store backed by the local filesystem, for development and
// tests. Keys map to file paths under the base directory and references are
// baseURL-prefixed paths served as static files.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore creates the base directory if needed and returns a LocalStore.
func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %q: %w", baseDir, err)
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// BaseDir returns the directory files are stored under, for static serving.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

// Put writes content to disk under key and returns its URL.
func (s *LocalStore) Put(_ context.Context, key string, content []byte, _ string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", fmt.Errorf("local blob store: empty key")
	}
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create blob subdir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write blob %q: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes the file under key. Absent files are ignored.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(strings.TrimLeft(key, "/")))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}
