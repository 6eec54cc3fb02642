package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyFilename = errors.New("filename cannot be empty")

// Store persists media binaries. Deleting a media record must also release
// its binary; this is the collaborator that performs that side effect.
type Store interface {
	Save(subdir, filename string, r io.Reader) (string, error)
	Remove(path string) error
}

// LocalStore keeps files under a base directory, namespaced per entity
// ("media_hotel", "media_room").
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

func (s *LocalStore) Save(subdir, filename string, r io.Reader) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}

	// Stored names are randomized; the original extension is kept.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	relPath := filepath.Join(subdir, name)
	absPath := filepath.Join(s.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(absPath)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return relPath, nil
}

func (s *LocalStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}
