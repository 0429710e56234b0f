package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
// Everything has a usable default; a .env file or environment variables override.
type Config struct {
	Port           string
	WebAppDir      string // Path to the web application's UI files
	UploadDir      string // Base directory for all uploads
	CoverUploadDir string // Subdirectory for cover images: UploadDir/covers
	TrackUploadDir string // Subdirectory for audio files: UploadDir/tracks

	// Storage backend selection: "local" (default) or "minio".
	StorageBackend string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioRegion    string
	MinioUseSSL    bool

	LogLevel string
	LogFile  string

	// Console client settings
	ServerURL  string
	FFplayPath string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	uploadBase := getEnv("UPLOAD_DIR", "uploads")

	return &Config{
		Port:           getEnv("PORT", "5000"),
		WebAppDir:      getEnv("WEB_APP_DIR", filepath.Join("web", "ui")),
		UploadDir:      uploadBase,
		CoverUploadDir: filepath.Join(uploadBase, "covers"),
		TrackUploadDir: filepath.Join(uploadBase, "tracks"),
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "127.0.0.1:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "yebox"),
		MinioRegion:    getEnv("MINIO_REGION", ""),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
		ServerURL:      getEnv("SERVER_URL", "http://localhost:5000"),
		FFplayPath:     getEnv("FFPLAY_PATH", "ffplay"),
	}
}
