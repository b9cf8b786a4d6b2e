// Package reference exposes health checks for the reference inventory.
//
// It fetches a variant's sheet from the configured source and verifies it carries
// every column the variant reads. Use it after publishing a new inventory.
//
// # HTTP Endpoints
//
//   - GET /reference : Checks every variant.
//   - GET /reference/storage : Checks the bucket and the expected objects (workbook, template).
//   - GET /reference/:variant : Checks one variant's sheet.
package reference
