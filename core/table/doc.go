// Package table provides the in-memory tabular model shared by uploads,
// reference sheets and exports.
//
// A Table is a header row plus string rows. Values are kept as text because the
// sources disagree on types (CSV is untyped, XLSX cells are formatted); typed
// decoding happens at the reconcile boundary.
//
// # Formats
//
//   - CSV: comma separated, first record is the header.
//   - XLSX: one sheet (named, or the first one), first row is the header.
//
// Read picks the decoder from the file extension. WriteXLSX emits a single sheet
// with a header row and no index column.
//
// # Usage
//
//	t, err := table.Read("productos.xlsx", file)
//	t.NormalizeColumns()
//	missing := t.Missing("cur", "codart")
package table
