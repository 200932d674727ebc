package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadObject(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error)
	// UploadLargeObject streams via multipart upload.
	UploadLargeObject(ctx context.Context, objectKey string, body io.Reader) (string, error)
	DownloadObject(ctx context.Context, objectKey string) ([]byte, error)
	DeleteObject(ctx context.Context, objectKey string) error
}
