package reconcile

import (
	"product-alternatives/core/table"
)

// Reconcile joins the query table against the reference table for one variant.
// Both tables have their column names normalized in place.
//
// On a validation failure it returns an empty Result and a *MissingColumnsError;
// no join is attempted.
func Reconcile(query, reference *table.Table, spec *Spec) (*Result, error) {
	result := &Result{Spec: spec, Alternatives: []Alternative{}}

	query.NormalizeColumns()
	reference.NormalizeColumns()

	if err := ValidateColumns(query, KindQuery, spec.QueryRequired); err != nil {
		return result, err
	}
	if err := ValidateColumns(reference, KindReference, spec.ReferenceColumns); err != nil {
		return result, err
	}

	queries := queryRecords(query, spec)

	// Restrict the inventory to the requested products before joining
	curs := make(map[string]struct{}, len(queries))
	for _, q := range queries {
		curs[q.Cur] = struct{}{}
	}

	refIdx := indexColumns(reference)
	byKey := make(map[string][]ReferenceRecord)
	for _, row := range reference.Rows {
		if _, ok := curs[refIdx.get(row, ColCur)]; !ok {
			continue
		}
		rec := decodeReference(refIdx, row)
		key := joinKey(spec, rec.Value)
		byKey[key] = append(byKey[key], rec)
	}

	seen := make(map[string]struct{})
	for _, q := range queries {
		for _, ref := range byKey[joinKey(spec, q.Value)] {
			alt := Alternative{Query: q, Reference: ref}
			k := rowKey(spec.Row(alt))
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			result.Alternatives = append(result.Alternatives, alt)
		}
	}

	return result, nil
}

// Run is the full interaction pipeline: reconcile, then filter by the selection.
func Run(query, reference *table.Table, spec *Spec, sel Selection) (*Result, error) {
	result, err := Reconcile(query, reference, spec)
	if err != nil {
		return result, err
	}
	return result.Filter(sel)
}

// queryRecords decodes the query rows, optionally dropping repeated natural keys.
func queryRecords(query *table.Table, spec *Spec) []QueryRecord {
	idx := indexColumns(query)
	records := make([]QueryRecord, 0, query.Len())
	seen := make(map[string]struct{})

	for _, row := range query.Rows {
		rec := decodeQuery(idx, row)
		if spec.DedupeQuery {
			values := make([]string, len(spec.QuerySelect))
			for i, col := range spec.QuerySelect {
				values[i] = rec.Value(col)
			}
			k := rowKey(values)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
		}
		records = append(records, rec)
	}
	return records
}

func joinKey(spec *Spec, value func(string) string) string {
	values := make([]string, len(spec.JoinKeys))
	for i, col := range spec.JoinKeys {
		values[i] = value(col)
	}
	return rowKey(values)
}
