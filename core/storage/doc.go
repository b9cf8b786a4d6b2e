// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the reference inventory workbook and the upload
// template can live in an S3 compatible bucket. With bucket versioning enabled,
// a specific published revision of the inventory can be pinned by version ID.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream (optionally a given version).
//   - StatObject: Reads metadata such as the current version ID.
//   - PutObject: Publishes a new workbook revision.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, err := client.GetObject(ctx, "inventario", "inventario.xlsx", minio.GetObjectOptions{})
package storage
