package storage

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// VideoPrefix is the key prefix under which exercise videos are stored.
const VideoPrefix = "exercise-videos"

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

var ErrInvalidFileName = errors.New("file name is required")

// VideoKey builds a fresh object key for a video uploaded by owner:
// exercise-videos/<owner>/<uuid><ext>. Only the extension of fileName is kept.
func VideoKey(owner, fileName string) (string, error) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), `\`, "/"))
	if base == "" || base == "." || base == "/" {
		return "", ErrInvalidFileName
	}
	ext := strings.ToLower(path.Ext(base))
	return path.Join(VideoPrefix, owner, uuid.NewString()+ext), nil
}

// OwnsVideoKey reports whether key lies under owner's video prefix.
func OwnsVideoKey(owner, key string) bool {
	prefix := VideoPrefix + "/" + owner + "/"
	rest, ok := strings.CutPrefix(key, prefix)
	return ok && owner != "" && rest != "" && !strings.Contains(rest, "/") && !strings.Contains(rest, "..")
}
