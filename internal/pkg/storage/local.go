// internal/pkg/storage/local.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
)

// ImageStore persists uploaded image bytes and returns a retrievable
// location string.
type ImageStore interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}

// LocalImageStore writes product images under a local directory.
type LocalImageStore struct {
	config *config.Config
}

// NewLocalImageStore creates a local image store
func NewLocalImageStore(cfg *config.Config) *LocalImageStore {
	return &LocalImageStore{
		config: cfg,
	}
}

// Save validates the file extension against the allow-list, writes the
// bytes under a generated filename and returns the stored path.
func (s *LocalImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !s.isExtensionAllowed(ext) {
		return "", apperrors.BadRequest("Invalid image format. Please upload a PNG or JPEG image.")
	}

	if header.Size > s.config.Upload.MaxSize {
		return "", apperrors.BadRequest(fmt.Sprintf("Image exceeds maximum size of %d bytes", s.config.Upload.MaxSize))
	}

	if err := os.MkdirAll(s.config.Upload.LocalPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	path := filepath.Join(s.config.Upload.LocalPath, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path, nil
}

func (s *LocalImageStore) isExtensionAllowed(ext string) bool {
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
