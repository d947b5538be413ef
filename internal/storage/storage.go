package storage

import (
	"context"
	"time"
)

// DefaultPresignedURLExpiry is used when a caller passes a non-positive
// expiry.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage abstracts the media object store. Clients upload and download
// directly against presigned URLs; the API never proxies file bytes.
type FileStorage interface {
	GenerateUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	GenerateDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}
