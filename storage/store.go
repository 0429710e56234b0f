package storage

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore persists uploaded album files under two kinds: cover images and
// audio tracks. Stored names are generated; the uploader's filename is never
// used on disk.
type FileStore interface {
	// SaveCover stores a cover image and returns the generated filename.
	SaveCover(ctx context.Context, r io.Reader, originalName string) (string, error)

	// SaveTrack stores an audio file and returns the generated filename.
	SaveTrack(ctx context.Context, r io.Reader, originalName string) (string, error)

	// RemoveCover deletes a stored cover image.
	RemoveCover(ctx context.Context, storedName string) error

	// RemoveTrack deletes a stored audio file.
	RemoveTrack(ctx context.Context, storedName string) error
}

// generateStoredName builds a collision-free filename: a fresh UUID with the
// original file's extension preserved.
func generateStoredName(originalName string) string {
	return uuid.NewString() + filepath.Ext(originalName)
}
