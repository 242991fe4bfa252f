// Package storage holds uploaded file content. The store is an explicit
// collaborator handed to the file handlers at construction, not ambient
// process state, so tests can point it at a scratch directory.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps content as flat files under a root directory.
type LocalStore struct {
	root string
}

// NewLocalStore ensures root exists and returns a store over it.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{root: root}, nil
}

// Path returns the on-disk location for a stored name. The name is reduced
// to its base so a crafted value cannot escape the root.
func (s *LocalStore) Path(storedName string) string {
	return filepath.Join(s.root, filepath.Base(storedName))
}

// Save writes src to the store and returns the number of bytes written.
func (s *LocalStore) Save(storedName string, src io.Reader) (int64, error) {
	dst, err := os.Create(s.Path(storedName))
	if err != nil {
		return 0, err
	}
	defer dst.Close()
	return io.Copy(dst, src)
}

// Open returns the stored content for reading.
func (s *LocalStore) Open(storedName string) (*os.File, error) {
	return os.Open(s.Path(storedName))
}

// Remove deletes stored content. Content that is already gone is treated as
// removed, so cleanup stays idempotent.
func (s *LocalStore) Remove(storedName string) error {
	err := os.Remove(s.Path(storedName))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
