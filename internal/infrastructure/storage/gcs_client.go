package storage

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"cropsight/internal/domain/service"
	apperrors "cropsight/pkg/errors"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func objectExtension(fileType string) string {
	switch fileType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

// UploadFile stores the bytes as a public object and returns its URL together
// with the object name used for later deletion.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*service.UploadResult, error) {
	if folder == "" {
		folder = "cropsight"
	}

	objectName := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), objectExtension(fileType))

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=86400"

	written, err := io.Copy(wc, file)
	if err != nil {
		wc.Close()
		return nil, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %v", err)
	}

	return &service.UploadResult{
		URL:       c.objectURL(objectName),
		StorageID: objectName,
		Size:      written,
	}, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, storageID string) error {
	// Accept either a bare object name or a full public URL.
	objectName := c.objectNameFromID(storageID)
	if objectName == "" {
		return fmt.Errorf("invalid storage id %q", storageID)
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		if goerrors.Is(err, storage.ErrObjectNotExist) {
			return apperrors.NotFound("Image", err)
		}
		return apperrors.Upstream("Failed to delete file", err)
	}

	return nil
}

func (c *CloudStorageClient) GetFileDetails(ctx context.Context, storageID string) (*service.FileDetails, error) {
	objectName := c.objectNameFromID(storageID)
	if objectName == "" {
		return nil, fmt.Errorf("invalid storage id %q", storageID)
	}

	attrs, err := c.client.Bucket(c.bucketName).Object(objectName).Attrs(ctx)
	if err != nil {
		if goerrors.Is(err, storage.ErrObjectNotExist) {
			return nil, apperrors.NotFound("Image", err)
		}
		return nil, apperrors.Upstream("Failed to read file details", err)
	}

	return &service.FileDetails{
		StorageID:   objectName,
		URL:         c.objectURL(objectName),
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		CreatedAt:   attrs.Created.UTC().Format(time.RFC3339),
	}, nil
}

func (c *CloudStorageClient) objectURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
}

func (c *CloudStorageClient) objectNameFromID(storageID string) string {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if strings.HasPrefix(storageID, prefix) {
		return storageID[len(prefix):]
	}
	if strings.HasPrefix(storageID, "https://") {
		return ""
	}
	return storageID
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
