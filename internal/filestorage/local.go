// File: internal/filestorage/local.go
package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalStorage stores objects on the local filesystem. Objects are served
// back by the HTTP server under the configured public base URL.
type LocalStorage struct {
	basePath string
	baseURL  string
	logger   *zap.Logger
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage creates a LocalStorage rooted at basePath.
func NewLocalStorage(basePath, baseURL string, logger *zap.Logger) (*LocalStorage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error("Failed to create storage path directory", zap.String("path", basePath), zap.Error(err))
		return nil, fmt.Errorf("failed to create storage path %s: %w", basePath, err)
	}
	logger.Info("Local file storage initialized", zap.String("storagePath", basePath))
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		logger:   logger,
	}, nil
}

// Upload writes the content under key below the base path.
func (s *LocalStorage) Upload(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	cleanKey := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(cleanKey, "..") || filepath.IsAbs(cleanKey) {
		s.logger.Error("Invalid storage key, attempts to navigate up", zap.String("key", key))
		return "", fmt.Errorf("invalid storage key")
	}

	destinationPath := filepath.Join(s.basePath, cleanKey)
	if err := os.MkdirAll(filepath.Dir(destinationPath), os.ModePerm); err != nil {
		s.logger.Error("Failed to create directory for file storage", zap.String("path", destinationPath), zap.Error(err))
		return "", fmt.Errorf("failed to create directory for %s: %w", destinationPath, err)
	}

	dst, err := os.Create(destinationPath)
	if err != nil {
		s.logger.Error("Failed to create destination file", zap.String("path", destinationPath), zap.Error(err))
		return "", fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		s.logger.Error("Failed to copy uploaded file to destination", zap.String("path", destinationPath), zap.Error(err))
		os.Remove(destinationPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("File saved successfully", zap.String("path", destinationPath))
	return s.baseURL + "/" + filepath.ToSlash(cleanKey), nil
}

// Delete removes the object under key. Missing objects are logged and ignored.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("storage key cannot be empty")
	}

	cleanKey := filepath.Clean(filepath.FromSlash(key))
	if strings.Contains(cleanKey, "..") || filepath.IsAbs(cleanKey) {
		s.logger.Warn("Attempt to delete file with path traversal", zap.String("key", key))
		return fmt.Errorf("invalid file path for deletion")
	}

	fullPath := filepath.Join(s.basePath, cleanKey)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		s.logger.Warn("Attempt to delete non-existent file", zap.String("path", fullPath))
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		s.logger.Error("Failed to delete file", zap.String("path", fullPath), zap.Error(err))
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}

	s.logger.Info("File deleted successfully", zap.String("path", fullPath))
	return nil
}
