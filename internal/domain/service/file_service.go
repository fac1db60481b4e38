package service

import (
	"context"
	"io"
)

// UploadResult describes a stored object. StorageID is the provider-side
// object name used for later deletion and detail lookups.
type UploadResult struct {
	URL       string
	StorageID string
	Size      int64
}

// FileDetails is the attribute set surfaced by the image details endpoint.
type FileDetails struct {
	StorageID   string
	URL         string
	ContentType string
	Size        int64
	CreatedAt   string
}

type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*UploadResult, error)
	DeleteFile(ctx context.Context, storageID string) error
	GetFileDetails(ctx context.Context, storageID string) (*FileDetails, error)
	Close() error
}
