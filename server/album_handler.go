package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"yebox/config"
	"yebox/logger"
	"yebox/model"
	"yebox/repository"
	"yebox/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	// maxUploadMemory is the in-memory budget handed to ParseMultipartForm;
	// larger parts spill to temp files.
	maxUploadMemory = 32 << 20

	maxTrackFiles = 50
)

// Multipart field names, shared with the web UI upload form.
const (
	coverField = "coverImage"
	trackField = "musicFiles"
	nameField  = "albumName"
)

// APIHandler serves the album API.
type APIHandler struct {
	catalog repository.CatalogRepository
	files   storage.FileStore
	cfg     *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(catalog repository.CatalogRepository, files storage.FileStore, cfg *config.Config) *APIHandler {
	return &APIHandler{
		catalog: catalog,
		files:   files,
		cfg:     cfg,
	}
}

// ListAlbumsHandler returns every album in the catalog, in upload order.
func (h *APIHandler) ListAlbumsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Only GET method is allowed", http.StatusMethodNotAllowed)
		return
	}

	albums, err := h.catalog.ListAlbums(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list albums")
		return
	}

	respondJSON(w, http.StatusOK, albums)
}

// UploadAlbumHandler handles a multipart album upload: one cover image,
// one to fifty audio tracks and the album name.
func (h *APIHandler) UploadAlbumHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	logger.Info("Handling album upload",
		logger.String("remoteAddr", r.RemoteAddr),
		logger.Int64("contentLength", r.ContentLength),
	)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Error("Failed to parse upload form", logger.ErrorField(err))
		respondError(w, http.StatusBadRequest, "Failed to parse upload form")
		return
	}

	// The album name is not validated; empty and duplicate names are accepted.
	albumName := r.FormValue(nameField)

	covers := r.MultipartForm.File[coverField]
	tracks := r.MultipartForm.File[trackField]

	if msg, ok := checkUploadParts(covers, tracks); !ok {
		logger.Warn("Rejected album upload", logger.String("reason", msg))
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	stored := newStoredFiles(h.files)

	coverName, err := h.storeCover(r, covers[0])
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to upload album")
		return
	}
	stored.cover = coverName

	albumTracks := make([]model.Track, 0, len(tracks))
	for _, header := range tracks {
		trackName, err := h.storeTrack(r, header)
		if err != nil {
			stored.cleanup(r)
			respondError(w, http.StatusInternalServerError, "Failed to upload album")
			return
		}
		stored.tracks = append(stored.tracks, trackName)

		albumTracks = append(albumTracks, model.Track{
			Name:         strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
			File:         trackName,
			OriginalName: header.Filename,
		})
	}

	album := &model.Album{
		ID:         uuid.NewString(),
		Name:       albumName,
		Cover:      coverName,
		Tracks:     albumTracks,
		UploadDate: time.Now(),
	}

	if err := h.catalog.InsertAlbum(r.Context(), album); err != nil {
		stored.cleanup(r)
		logger.Error("Failed to insert album into catalog", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to upload album")
		return
	}

	logger.Info("New album uploaded",
		logger.String("albumId", album.ID),
		logger.String("name", album.Name),
		logger.Int("trackCount", len(album.Tracks)),
	)

	respondJSON(w, http.StatusOK, model.UploadResponse{
		Message: "Album uploaded successfully",
		Album:   album,
	})
}

// DeleteAlbumHandler removes an album and its files. File deletion is
// best-effort; the catalog record goes away regardless.
func (h *APIHandler) DeleteAlbumHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Only DELETE method is allowed", http.StatusMethodNotAllowed)
		return
	}

	albumID := mux.Vars(r)["id"]

	album, err := h.catalog.RemoveAlbum(r.Context(), albumID)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			respondError(w, http.StatusNotFound, "Album not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete album")
		return
	}

	if err := h.files.RemoveCover(r.Context(), album.Cover); err != nil {
		logger.Warn("Failed to delete cover file",
			logger.String("albumId", album.ID),
			logger.String("file", album.Cover),
			logger.ErrorField(err),
		)
	}
	for _, track := range album.Tracks {
		if err := h.files.RemoveTrack(r.Context(), track.File); err != nil {
			logger.Warn("Failed to delete track file",
				logger.String("albumId", album.ID),
				logger.String("file", track.File),
				logger.ErrorField(err),
			)
		}
	}

	logger.Info("Album deleted",
		logger.String("albumId", album.ID),
		logger.String("name", album.Name),
	)

	respondJSON(w, http.StatusOK, model.DeleteResponse{Message: "Album deleted successfully"})
}

// checkUploadParts validates part counts and declared content types before
// anything is written to storage.
func checkUploadParts(covers, tracks []*multipart.FileHeader) (string, bool) {
	switch {
	case len(covers) == 0:
		return "Missing cover image", false
	case len(covers) > 1:
		return "Only one cover image is allowed", false
	case len(tracks) == 0:
		return "Missing music files", false
	case len(tracks) > maxTrackFiles:
		return fmt.Sprintf("Too many music files, maximum is %d", maxTrackFiles), false
	}

	if ct := covers[0].Header.Get("Content-Type"); ct != "image/jpeg" && ct != "image/png" {
		return "Only JPEG and PNG images are allowed for cover", false
	}
	for _, track := range tracks {
		if ct := track.Header.Get("Content-Type"); ct != "audio/mpeg" && ct != "audio/mp3" {
			return "Only MP3 files are allowed for music", false
		}
	}

	return "", true
}

func (h *APIHandler) storeCover(r *http.Request, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open cover part", logger.ErrorField(err))
		return "", err
	}
	defer file.Close()

	storedName, err := h.files.SaveCover(r.Context(), file, header.Filename)
	if err != nil {
		logger.Error("Failed to store cover file",
			logger.String("filename", header.Filename),
			logger.ErrorField(err),
		)
		return "", err
	}
	return storedName, nil
}

func (h *APIHandler) storeTrack(r *http.Request, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open track part", logger.ErrorField(err))
		return "", err
	}
	defer file.Close()

	storedName, err := h.files.SaveTrack(r.Context(), file, header.Filename)
	if err != nil {
		logger.Error("Failed to store track file",
			logger.String("filename", header.Filename),
			logger.ErrorField(err),
		)
		return "", err
	}
	return storedName, nil
}

// storedFiles tracks what a single upload request has written so a failing
// request can clean up after itself. Cleanup is best-effort only.
type storedFiles struct {
	files  storage.FileStore
	cover  string
	tracks []string
}

func newStoredFiles(files storage.FileStore) *storedFiles {
	return &storedFiles{files: files}
}

func (s *storedFiles) cleanup(r *http.Request) {
	if s.cover != "" {
		if err := s.files.RemoveCover(r.Context(), s.cover); err != nil {
			logger.Warn("Failed to clean up cover file", logger.String("file", s.cover), logger.ErrorField(err))
		}
	}
	for _, track := range s.tracks {
		if err := s.files.RemoveTrack(r.Context(), track); err != nil {
			logger.Warn("Failed to clean up track file", logger.String("file", track), logger.ErrorField(err))
		}
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, model.ErrorResponse{Error: msg})
}
