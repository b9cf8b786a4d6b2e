package table

import (
	"strings"
)

// Table is a header row plus data rows. Every row has len(Columns) cells.
type Table struct {
	// Columns holds the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows holds the cell values, one slice per data row.
	Rows [][]string `json:"rows"`
}

// New creates an empty table with the given header.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: [][]string{}}
}

// NormalizeColumn lower-cases and trims a header name.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeColumns normalizes every header name in place.
// Applying it twice is a no-op.
func (t *Table) NormalizeColumns() {
	for i, c := range t.Columns {
		t.Columns[i] = NormalizeColumn(c)
	}
}

// Index returns the position of a column or -1 if absent.
// The first occurrence wins when a header is repeated.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Has reports whether the column exists.
func (t *Table) Has(column string) bool {
	return t.Index(column) >= 0
}

// Missing returns the required columns that are not present, in the order given.
func (t *Table) Missing(required ...string) []string {
	var missing []string
	for _, col := range required {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds a row, padding or truncating it to the header width.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, fit(row, len(t.Columns)))
}

// Column returns every value of a column, or nil if the column is absent.
func (t *Table) Column(column string) []string {
	idx := t.Index(column)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// fit returns a copy of row with exactly width cells.
func fit(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// isBlank reports whether every cell of the row is empty.
func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := New(t.Columns...)
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}
