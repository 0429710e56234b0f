package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps covers and tracks in two flat directories on disk.
type LocalStore struct {
	coverDir string
	trackDir string
}

// NewLocalStore creates the cover and track directories if needed.
func NewLocalStore(coverDir, trackDir string) (*LocalStore, error) {
	for _, dir := range []string{coverDir, trackDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &LocalStore{coverDir: coverDir, trackDir: trackDir}, nil
}

// SaveCover stores a cover image and returns the generated filename.
func (s *LocalStore) SaveCover(_ context.Context, r io.Reader, originalName string) (string, error) {
	return saveFile(s.coverDir, r, originalName)
}

// SaveTrack stores an audio file and returns the generated filename.
func (s *LocalStore) SaveTrack(_ context.Context, r io.Reader, originalName string) (string, error) {
	return saveFile(s.trackDir, r, originalName)
}

// RemoveCover deletes a stored cover image.
func (s *LocalStore) RemoveCover(_ context.Context, storedName string) error {
	return os.Remove(filepath.Join(s.coverDir, filepath.Base(storedName)))
}

// RemoveTrack deletes a stored audio file.
func (s *LocalStore) RemoveTrack(_ context.Context, storedName string) error {
	return os.Remove(filepath.Join(s.trackDir, filepath.Base(storedName)))
}

func saveFile(dir string, r io.Reader, originalName string) (string, error) {
	storedName := generateStoredName(originalName)

	f, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return storedName, nil
}
