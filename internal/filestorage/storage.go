// File: internal/filestorage/storage.go
package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"time"

	"music_catalog_backend/internal/config"

	"go.uber.org/zap"
)

// Storage abstracts the blob store holding genre, artist and song media.
type Storage interface {
	// Upload stores the content under key and returns its public URL.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	// Delete removes the object under key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds the storage key for an uploaded file:
// <prefix><unix-millis>_<original-name>. Same-millisecond collisions are an
// accepted risk; the original filename is kept for operator readability.
func ObjectKey(prefix, filename string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + filepath.Base(filename)
}

// SaveMultipart uploads a multipart file under the given key prefix and
// returns the public URL of the stored object.
func SaveMultipart(ctx context.Context, s Storage, prefix string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("fileHeader cannot be nil")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := ObjectKey(prefix, fh.Filename, time.Now())
	contentType := fh.Header.Get("Content-Type")
	return s.Upload(ctx, key, src, contentType)
}

// NewStorage builds the configured storage driver.
func NewStorage(cfg *config.Config, logger *zap.Logger) (Storage, error) {
	switch cfg.StorageDriver {
	case "local":
		return NewLocalStorage(cfg.StorageLocalPath, cfg.StoragePublicBaseURL, logger)
	case "s3":
		return NewS3Storage(context.Background(), S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretAccessKey,
			UsePathStyle:   cfg.S3UsePathStyle,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
