package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidQuery matches missing-column errors on the uploaded table.
	ErrInvalidQuery = errors.New("query table is missing required columns")
	// ErrInvalidReference matches missing-column errors on the reference table.
	ErrInvalidReference = errors.New("reference table is missing required columns")
	// ErrNothingSelected is returned by Filter when no facet value was chosen.
	ErrNothingSelected = errors.New("no facet values selected")
	// ErrUnknownVariant is returned by Lookup for names that are not registered.
	ErrUnknownVariant = errors.New("unknown variant")
)

// TableKind identifies which side of the join a table is.
type TableKind string

const (
	KindQuery     TableKind = "query"
	KindReference TableKind = "reference"
)

// MissingColumnsError reports required columns absent from a table.
type MissingColumnsError struct {
	Kind     TableKind
	Required []string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	if e.Kind == KindQuery {
		return fmt.Sprintf("the uploaded file must contain the columns: %s (missing: %s)",
			strings.Join(e.Required, ", "), strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("reference inventory is missing columns %s; verify the source file",
		strings.Join(e.Missing, ", "))
}

// Is lets errors.Is match the sentinel for the table kind.
func (e *MissingColumnsError) Is(target error) bool {
	switch target {
	case ErrInvalidQuery:
		return e.Kind == KindQuery
	case ErrInvalidReference:
		return e.Kind == KindReference
	}
	return false
}
