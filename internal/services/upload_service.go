package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"mediahub/internal/common"
	"mediahub/internal/models"

	"github.com/google/uuid"
)

// MaxUploadSize bounds a single uploaded image
const MaxUploadSize int64 = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadService stores image files and returns references usable in product image lists
type UploadService interface {
	UploadImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (*models.UploadedImage, error)
}

type uploadService struct {
	storage   ObjectStorage
	urlExpiry time.Duration
}

// NewUploadService accepts a nil storage; uploads then report the feature as unavailable
func NewUploadService(storage ObjectStorage, urlExpiry time.Duration) UploadService {
	return &uploadService{storage: storage, urlExpiry: urlExpiry}
}

func (s *uploadService) UploadImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (*models.UploadedImage, error) {
	if s.storage == nil {
		return nil, common.NewUnavailableError("Image storage is not configured")
	}
	if size <= 0 {
		return nil, common.NewValidationError("File is empty")
	}
	if size > MaxUploadSize {
		return nil, common.NewValidationError(fmt.Sprintf("File exceeds %d bytes", MaxUploadSize))
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, common.NewValidationError("Only jpeg, png, gif and webp images are accepted")
	}
	if contentType == "image/jpeg" && strings.EqualFold(path.Ext(filename), ".jpeg") {
		ext = ".jpeg"
	}

	key := "uploads/" + uuid.NewString() + ext
	if err := s.storage.PutObject(ctx, key, reader, size, contentType); err != nil {
		return nil, common.NewInternalError(fmt.Errorf("failed to store %s: %w", key, err))
	}

	url, err := s.storage.PresignedURL(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, common.NewInternalError(fmt.Errorf("failed to presign %s: %w", key, err))
	}

	return &models.UploadedImage{Key: key, URL: url}, nil
}
