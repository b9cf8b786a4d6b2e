// Package utils provides common conversion helpers for product-alternatives.
// They turn loosely typed cell and column values (spreadsheet text, database
// scan results) into the Go types the reconcile pipeline works with.
package utils
