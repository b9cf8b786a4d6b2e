package reconcile

import (
	"sort"

	"product-alternatives/core/table"
)

// Empty reports whether the result has no alternatives.
func (r *Result) Empty() bool {
	return len(r.Alternatives) == 0
}

// Len returns the number of alternatives.
func (r *Result) Len() int {
	return len(r.Alternatives)
}

// Facets returns the distinct values of every facet the variant exposes, ascending.
func (r *Result) Facets() FacetValues {
	values := FacetValues{Opciones: []int{}}
	opciones := make(map[int]struct{})
	bodegas := make(map[string]struct{})

	for _, a := range r.Alternatives {
		opciones[a.Reference.Opcion] = struct{}{}
		bodegas[a.Reference.Bodega] = struct{}{}
	}

	for o := range opciones {
		values.Opciones = append(values.Opciones, o)
	}
	sort.Ints(values.Opciones)

	if r.Spec.HasFacet(ColBodega) {
		values.Bodegas = make([]string, 0, len(bodegas))
		for b := range bodegas {
			values.Bodegas = append(values.Bodegas, b)
		}
		sort.Strings(values.Bodegas)
	}
	return values
}

// IsEmpty reports whether no value is selected for any facet the variant exposes.
func (s *Spec) IsEmpty(sel Selection) bool {
	if s.HasFacet(ColOpcion) && len(sel.Opciones) > 0 {
		return false
	}
	if s.HasFacet(ColBodega) && len(sel.Bodegas) > 0 {
		return false
	}
	return true
}

// Filter returns the alternatives whose facet values are selected.
// A facet with no selected values does not restrict the rows; if no facet has
// any selected value, Filter returns ErrNothingSelected.
func (r *Result) Filter(sel Selection) (*Result, error) {
	if r.Spec.IsEmpty(sel) {
		return nil, ErrNothingSelected
	}

	var opciones map[int]struct{}
	if r.Spec.HasFacet(ColOpcion) && len(sel.Opciones) > 0 {
		opciones = make(map[int]struct{}, len(sel.Opciones))
		for _, o := range sel.Opciones {
			opciones[o] = struct{}{}
		}
	}

	var bodegas map[string]struct{}
	if r.Spec.HasFacet(ColBodega) && len(sel.Bodegas) > 0 {
		bodegas = make(map[string]struct{}, len(sel.Bodegas))
		for _, b := range sel.Bodegas {
			bodegas[b] = struct{}{}
		}
	}

	filtered := &Result{Spec: r.Spec, Alternatives: []Alternative{}}
	for _, a := range r.Alternatives {
		if opciones != nil {
			if _, ok := opciones[a.Reference.Opcion]; !ok {
				continue
			}
		}
		if bodegas != nil {
			if _, ok := bodegas[a.Reference.Bodega]; !ok {
				continue
			}
		}
		filtered.Alternatives = append(filtered.Alternatives, a)
	}
	return filtered, nil
}

// Table renders the result with the variant's output columns.
func (r *Result) Table() *table.Table {
	t := table.New(r.Spec.OutputColumns()...)
	for _, a := range r.Alternatives {
		t.Append(r.Spec.Row(a))
	}
	return t
}
