package server

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"yebox/logger"
	"yebox/storage"
)

// UploadsHandler serves /uploads/covers/{file} and /uploads/tracks/{file}
// from the MinIO backend. With local storage the router uses a plain
// http.FileServer instead.
type UploadsHandler struct {
	store *storage.MinioStore
}

// NewUploadsHandler creates an UploadsHandler.
func NewUploadsHandler(store *storage.MinioStore) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// ServeHTTP implements the http.Handler interface.
func (h *UploadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/uploads/")

	kind, name, ok := strings.Cut(path, "/")
	if !ok || name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	var (
		object io.ReadCloser
		err    error
	)
	switch kind {
	case "covers":
		object, err = h.store.OpenCover(r.Context(), name)
	case "tracks":
		object, err = h.store.OpenTrack(r.Context(), name)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", detectContentType(path))
	w.Header().Set("Cache-Control", "public, max-age=31536000")

	if _, err := io.Copy(w, object); err != nil {
		logger.Error("Error serving file from MinIO", logger.ErrorField(err))
	}
}

// detectContentType picks the content type from the file extension, falling
// back to a default per path prefix for extensionless names.
func detectContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	switch {
	case strings.HasPrefix(path, "covers/"):
		return "image/jpeg"
	case strings.HasPrefix(path, "tracks/"):
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}
