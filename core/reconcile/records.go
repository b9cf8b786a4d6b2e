package reconcile

import (
	"strings"

	"product-alternatives/core/table"
	"product-alternatives/core/utils"

	"github.com/shopspring/decimal"
)

// columnIndex caches the position of each known column in a table.
type columnIndex map[string]int

func indexColumns(t *table.Table) columnIndex {
	idx := make(columnIndex, len(t.Columns))
	for i, c := range t.Columns {
		if _, seen := idx[c]; !seen {
			idx[c] = i
		}
	}
	return idx
}

func (ci columnIndex) get(row []string, col string) string {
	i, ok := ci[col]
	if !ok {
		return ""
	}
	return row[i]
}

func decodeQuery(ci columnIndex, row []string) QueryRecord {
	return QueryRecord{
		Cur:      ci.get(row, ColCur),
		Codart:   ci.get(row, ColCodart),
		Embalaje: ci.get(row, ColEmbalaje),
	}
}

func decodeReference(ci columnIndex, row []string) ReferenceRecord {
	rec := ReferenceRecord{
		Codart: ci.get(row, ColCodart),
		Cur:    ci.get(row, ColCur),
		Nomart: ci.get(row, ColNomart),
		Cum:    ci.get(row, ColCum),
		Carta:  ci.get(row, ColCarta),
		Opcion: CoerceOpcion(ci.get(row, ColOpcion)),
		Emb:    ci.get(row, ColEmb),
		Bodega: ci.get(row, ColBodega),
	}
	if raw := strings.TrimSpace(ci.get(row, ColCantidad)); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			rec.Cantidad = decimal.NewNullDecimal(d)
		}
	}
	return rec
}

// CoerceOpcion converts an opcion cell to a non-negative int.
// Empty and non-numeric values become 0.
func CoerceOpcion(raw string) int {
	return utils.ToNonNegativeInt(raw)
}

// Value returns the text of a query column.
func (q QueryRecord) Value(col string) string {
	switch col {
	case ColCur:
		return q.Cur
	case ColCodart:
		return q.Codart
	case ColEmbalaje:
		return q.Embalaje
	}
	return ""
}

// Value returns the text of a reference column.
func (r ReferenceRecord) Value(col string) string {
	switch col {
	case ColCodart:
		return r.Codart
	case ColCur:
		return r.Cur
	case ColNomart:
		return r.Nomart
	case ColCum:
		return r.Cum
	case ColCarta:
		return r.Carta
	case ColOpcion:
		return utils.ToString(r.Opcion)
	case ColEmb:
		return r.Emb
	case ColBodega:
		return r.Bodega
	case ColCantidad:
		if r.Cantidad.Valid {
			return r.Cantidad.Decimal.String()
		}
		return ""
	}
	return ""
}

// Row projects an alternative onto the variant's output columns.
func (s *Spec) Row(a Alternative) []string {
	cols := s.OutputColumns()
	row := make([]string, len(cols))
	for i, col := range cols {
		if contains(s.QuerySelect, col) {
			row[i] = a.Query.Value(col)
		} else {
			row[i] = a.Reference.Value(col)
		}
	}
	return row
}

// rowKey builds a comparable key from a list of values.
func rowKey(values []string) string {
	return strings.Join(values, "\x1f")
}
