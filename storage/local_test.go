package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	base := t.TempDir()
	store, err := NewLocalStore(filepath.Join(base, "covers"), filepath.Join(base, "tracks"))
	require.NoError(t, err)
	return store
}

func TestSaveTrackGeneratesNameAndKeepsExtension(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.SaveTrack(context.Background(), strings.NewReader("audio bytes"), "My Song.mp3")
	require.NoError(t, err)

	assert.NotEqual(t, "My Song.mp3", stored)
	assert.Equal(t, ".mp3", filepath.Ext(stored))

	data, err := os.ReadFile(filepath.Join(store.trackDir, stored))
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))
}

func TestSaveCoverUniqueNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.SaveCover(ctx, strings.NewReader("a"), "cover.png")
	require.NoError(t, err)
	second, err := store.SaveCover(ctx, strings.NewReader("b"), "cover.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemoveTrack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stored, err := store.SaveTrack(ctx, strings.NewReader("x"), "song.mp3")
	require.NoError(t, err)

	require.NoError(t, store.RemoveTrack(ctx, stored))
	_, err = os.Stat(filepath.Join(store.trackDir, stored))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveTrackMissingFileReturnsError(t *testing.T) {
	store := newTestStore(t)

	err := store.RemoveTrack(context.Background(), "never-stored.mp3")
	assert.Error(t, err)
}
