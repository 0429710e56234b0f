package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yebox/config"
	"yebox/logger"
	"yebox/repository"
	"yebox/storage"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogFile,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     30,
	})

	fileStore, err := newFileStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize file store", logger.ErrorField(err))
	}

	// The catalog lives only in memory and is lost on restart.
	catalog := repository.NewMemoryCatalogRepository()

	apiHandler := NewAPIHandler(catalog, fileStore, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(apiHandler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Ye-box server starting",
			logger.String("addr", server.Addr),
			logger.String("storageBackend", cfg.StorageBackend),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}

// NewRouter wires the API routes, upload file serving and the web UI.
func NewRouter(h *APIHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	// API endpoints
	router.HandleFunc("/api/albums", h.ListAlbumsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/upload", h.UploadAlbumHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/albums/{id}", h.DeleteAlbumHandler).Methods(http.MethodDelete)

	// Uploaded file serving
	if minioStore, ok := h.files.(*storage.MinioStore); ok {
		router.PathPrefix("/uploads/").Handler(NewUploadsHandler(minioStore))
	} else {
		uploadsFileServer := http.FileServer(http.Dir(h.cfg.UploadDir))
		router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", uploadsFileServer))
	}

	// Frontend UI serving
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(h.cfg.WebAppDir)))

	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Range")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Range")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.StorageBackend == "minio" {
		return storage.NewMinioStore(cfg)
	}
	return storage.NewLocalStore(cfg.CoverUploadDir, cfg.TrackUploadDir)
}
