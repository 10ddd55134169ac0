package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key  string
	ETag string
}

// SnapshotUploader pushes saved tournament data files to off-site storage.
type SnapshotUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
}
