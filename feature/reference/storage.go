package reference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-alternatives/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNoStorage is returned when the storage check runs without a storage client.
var ErrNoStorage = errors.New("storage is not configured")

// ObjectStatus describes one expected object in the bucket.
type ObjectStatus struct {
	Object       string    `json:"object"`
	Exists       bool      `json:"exists"`
	Size         int64     `json:"size,omitempty"`
	VersionID    string    `json:"version_id,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// CheckObjects verifies the bucket exists and stats each object.
// A missing object is reported, not returned as an error.
func CheckObjects(ctx context.Context, client storage.Client, bucket string, objects []string) ([]ObjectStatus, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	statuses := make([]ObjectStatus, 0, len(objects))
	for _, obj := range objects {
		info, err := client.StatObject(ctx, bucket, obj, minio.StatObjectOptions{})
		if err != nil {
			status := ObjectStatus{Object: obj}
			if minio.ToErrorResponse(err).Code != "NoSuchKey" {
				status.Error = err.Error()
			}
			statuses = append(statuses, status)
			continue
		}
		statuses = append(statuses, ObjectStatus{
			Object:       obj,
			Exists:       true,
			Size:         info.Size,
			VersionID:    info.VersionID,
			LastModified: info.LastModified,
		})
	}
	return statuses, nil
}
