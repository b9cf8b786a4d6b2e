package reference

import (
	"context"
	"fmt"

	"product-alternatives/core/storage"
	"product-alternatives/core/table"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads the inventory workbook from an S3/MinIO bucket.
type StorageSource struct {
	client    storage.Client
	bucket    string
	object    string
	versionID string
}

// NewStorageSource creates a source for bucket/object. An empty versionID reads the latest version.
func NewStorageSource(client storage.Client, bucket, object, versionID string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object, versionID: versionID}
}

func (s *StorageSource) Name() string {
	return KindStorage
}

func (s *StorageSource) Fetch(ctx context.Context, sheet string) (*table.Table, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{VersionID: s.versionID})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	return table.ReadXLSX(obj, sheet)
}
