package repository

import (
	"context"
	"errors"
	"sync"

	"yebox/model"
)

// ErrAlbumNotFound is returned when an album id is not in the catalog.
var ErrAlbumNotFound = errors.New("album not found")

// CatalogRepository defines the album catalog operations.
type CatalogRepository interface {
	// ListAlbums returns every album in insertion order.
	ListAlbums(ctx context.Context) ([]*model.Album, error)

	// InsertAlbum appends an album to the catalog.
	InsertAlbum(ctx context.Context, album *model.Album) error

	// GetAlbum returns an album by id.
	GetAlbum(ctx context.Context, id string) (*model.Album, error)

	// RemoveAlbum removes an album by id and returns the removed record.
	RemoveAlbum(ctx context.Context, id string) (*model.Album, error)
}

// MemoryCatalogRepository is the in-memory catalog. It starts empty and its
// contents are discarded at process exit. The mutex gives the store a single
// owner; handlers never touch the slice directly.
type MemoryCatalogRepository struct {
	mu     sync.RWMutex
	albums []*model.Album
}

// NewMemoryCatalogRepository creates an empty catalog.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{}
}

// ListAlbums returns every album in insertion order.
func (r *MemoryCatalogRepository) ListAlbums(_ context.Context) ([]*model.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Album, 0, len(r.albums))
	for _, album := range r.albums {
		result = append(result, cloneAlbum(album))
	}
	return result, nil
}

// InsertAlbum appends an album to the catalog.
func (r *MemoryCatalogRepository) InsertAlbum(_ context.Context, album *model.Album) error {
	if album == nil {
		return errors.New("album is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.albums = append(r.albums, cloneAlbum(album))
	return nil
}

// GetAlbum returns an album by id.
func (r *MemoryCatalogRepository) GetAlbum(_ context.Context, id string) (*model.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, album := range r.albums {
		if album.ID == id {
			return cloneAlbum(album), nil
		}
	}
	return nil, ErrAlbumNotFound
}

// RemoveAlbum removes an album by id and returns the removed record.
func (r *MemoryCatalogRepository) RemoveAlbum(_ context.Context, id string) (*model.Album, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, album := range r.albums {
		if album.ID == id {
			r.albums = append(r.albums[:i], r.albums[i+1:]...)
			return album, nil
		}
	}
	return nil, ErrAlbumNotFound
}

func cloneAlbum(src *model.Album) *model.Album {
	if src == nil {
		return nil
	}
	clone := *src
	if len(src.Tracks) > 0 {
		clone.Tracks = make([]model.Track, len(src.Tracks))
		copy(clone.Tracks, src.Tracks)
	}
	return &clone
}
