// Package reconcile joins a user supplied query table against the reference
// inventory and filters the result by facet.
//
// The whole pipeline is one configurable function. A Spec names the columns a
// variant requires and selects from each table, the keys it joins on and the
// facets it exposes; the three built-in variants (basico, embalaje, fomag) are
// plain Spec values.
//
// # Pipeline
//
// Reconcile runs these steps on every call:
//
//  1. Normalize column names on both tables (lower-case, trimmed).
//  2. Validate the query table, then the reference table.
//  3. Deduplicate the query on its selected columns.
//  4. Collect the distinct cur values of the query.
//  5. Restrict the reference to rows with one of those cur values.
//  6. Coerce opcion to a non-negative int (missing or non-numeric -> 0).
//  7. Select the variant's reference columns.
//  8. Inner join on the variant's keys, in query order then reference order.
//  9. Drop rows that repeat an earlier output tuple.
//
// Query rows without a match are dropped silently; an empty Result is not an error.
//
// # Errors
//
// Validation failures are returned as *MissingColumnsError together with an empty
// Result. errors.Is distinguishes the recoverable case (ErrInvalidQuery: the user
// can fix the upload) from the operational one (ErrInvalidReference: the reference
// source changed format).
//
// # Facets
//
// Result.Filter keeps the rows whose facet values are selected. Selections are
// ANDed across facets; a facet without selected values does not restrict. When
// nothing at all is selected Filter returns ErrNothingSelected instead of the
// unfiltered rows.
//
// # Usage
//
//	spec, _ := reconcile.Lookup("embalaje")
//	result, err := reconcile.Reconcile(query, reference, spec)
//	if errors.Is(err, reconcile.ErrInvalidQuery) {
//	    // ask for a new upload
//	}
//	filtered, err := result.Filter(reconcile.Selection{Opciones: []int{1}})
package reconcile
