package reconcile

import (
	"fmt"

	"product-alternatives/core/table"
)

// ValidateColumns checks that every required column is present in t.
// Column names must already be normalized.
func ValidateColumns(t *table.Table, kind TableKind, required []string) error {
	missing := t.Missing(required...)
	if len(missing) == 0 {
		return nil
	}
	return &MissingColumnsError{
		Kind:     kind,
		Required: append([]string(nil), required...),
		Missing:  missing,
	}
}

// Validate checks that the variant's column sets are consistent.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("variant has no name")
	}
	if len(s.JoinKeys) == 0 {
		return fmt.Errorf("variant %s: no join keys", s.Name)
	}
	if !contains(s.JoinKeys, ColCur) {
		return fmt.Errorf("variant %s: join keys must include %s", s.Name, ColCur)
	}
	for _, key := range s.JoinKeys {
		if !contains(s.QuerySelect, key) {
			return fmt.Errorf("variant %s: join key %s not selected from query", s.Name, key)
		}
		if !contains(s.ReferenceColumns, key) {
			return fmt.Errorf("variant %s: join key %s not selected from reference", s.Name, key)
		}
	}
	for _, col := range s.QuerySelect {
		if !contains(s.QueryRequired, col) {
			return fmt.Errorf("variant %s: selected query column %s is not required", s.Name, col)
		}
		if !contains(s.JoinKeys, col) && contains(s.ReferenceColumns, col) {
			return fmt.Errorf("variant %s: column %s selected from both tables", s.Name, col)
		}
	}
	for _, facet := range s.Facets {
		if facet != ColOpcion && facet != ColBodega {
			return fmt.Errorf("variant %s: unsupported facet %s", s.Name, facet)
		}
		if !contains(s.ReferenceColumns, facet) {
			return fmt.Errorf("variant %s: facet %s not selected from reference", s.Name, facet)
		}
	}
	return nil
}

// HasFacet reports whether the variant exposes the facet.
func (s *Spec) HasFacet(facet string) bool {
	return contains(s.Facets, facet)
}

// OutputColumns returns the joined header: the selected query columns followed by
// the selected reference columns that are not join keys.
func (s *Spec) OutputColumns() []string {
	cols := append([]string(nil), s.QuerySelect...)
	for _, c := range s.ReferenceColumns {
		if !contains(s.JoinKeys, c) {
			cols = append(cols, c)
		}
	}
	return cols
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
