package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"yebox/config"
	"yebox/logger"
)

const (
	coverPrefix = "covers/"
	trackPrefix = "tracks/"
)

// MinioStore keeps covers and tracks as objects in a single bucket, under
// covers/ and tracks/ prefixes. Selected with STORAGE_BACKEND=minio; the
// local disk store remains the default.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to MinIO and ensures the bucket exists.
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("Created MinIO bucket", logger.String("bucket", cfg.MinioBucket))
	}

	return &MinioStore{client: client, bucket: cfg.MinioBucket}, nil
}

// SaveCover stores a cover image and returns the generated filename.
func (s *MinioStore) SaveCover(ctx context.Context, r io.Reader, originalName string) (string, error) {
	return s.putObject(ctx, coverPrefix, r, originalName)
}

// SaveTrack stores an audio file and returns the generated filename.
func (s *MinioStore) SaveTrack(ctx context.Context, r io.Reader, originalName string) (string, error) {
	return s.putObject(ctx, trackPrefix, r, originalName)
}

// RemoveCover deletes a stored cover image.
func (s *MinioStore) RemoveCover(ctx context.Context, storedName string) error {
	return s.client.RemoveObject(ctx, s.bucket, coverPrefix+storedName, minio.RemoveObjectOptions{})
}

// RemoveTrack deletes a stored audio file.
func (s *MinioStore) RemoveTrack(ctx context.Context, storedName string) error {
	return s.client.RemoveObject(ctx, s.bucket, trackPrefix+storedName, minio.RemoveObjectOptions{})
}

// OpenCover opens a stored cover image for reading.
func (s *MinioStore) OpenCover(ctx context.Context, storedName string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, coverPrefix+storedName, minio.GetObjectOptions{})
}

// OpenTrack opens a stored audio file for reading.
func (s *MinioStore) OpenTrack(ctx context.Context, storedName string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, trackPrefix+storedName, minio.GetObjectOptions{})
}

func (s *MinioStore) putObject(ctx context.Context, prefix string, r io.Reader, originalName string) (string, error) {
	storedName := generateStoredName(originalName)

	// Size -1 streams the part without buffering it whole.
	_, err := s.client.PutObject(ctx, s.bucket, prefix+storedName, r, -1, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return storedName, nil
}
