// Package reference fetches the reference inventory that uploads are joined against.
//
// The inventory is a workbook with one sheet per variant. It is fetched fresh on
// every interaction so results always reflect the latest published inventory.
//
// # Sources
//
//   - http: downloads the workbook from a URL. A "{sheet}" placeholder in the URL
//     is replaced by the sheet name, which suits per-sheet CSV exports of hosted
//     spreadsheets.
//   - storage: reads the workbook object from the S3/MinIO bucket, optionally
//     pinned to a version ID.
//   - database: reads the table named like the sheet from the inventory database.
//
// # Fetcher
//
// Fetcher wraps a Source. Concurrent fetches of the same sheet share one request
// (singleflight); nothing is cached once the request completes. Each caller gets
// its own copy of the table. Failures are wrapped in ErrReferenceUnavailable.
//
// # Usage
//
//	src, err := reference.NewSource(cfg.Reference, store, cfg.Storage.Bucket, db)
//	fetcher := reference.NewFetcher(src, cfg.Reference.Timeout(), logger)
//	inv, err := fetcher.Fetch(ctx, "inventario")
package reference
