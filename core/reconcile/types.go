package reconcile

import (
	"github.com/shopspring/decimal"
)

// Column names, already normalized.
const (
	ColCur      = "cur"
	ColCodart   = "codart"
	ColEmbalaje = "embalaje"
	ColNomart   = "nomart"
	ColCum      = "cum"
	ColCarta    = "carta"
	ColOpcion   = "opcion"
	ColEmb      = "emb"
	ColBodega   = "bodega"
	ColCantidad = "cantidad"
)

// Spec defines one variant of the reconciliation.
// It bundles the column sets, join keys and facets.
type Spec struct {
	// Name is the unique variant name used in routes and CLI arguments.
	Name string `json:"name"`

	// Description is a short human readable summary.
	Description string `json:"description"`

	// QueryRequired lists the columns the uploaded table must contain.
	QueryRequired []string `json:"query_required"`

	// QuerySelect lists the query columns carried into the output, in order.
	// It must contain every join key.
	QuerySelect []string `json:"query_select"`

	// ReferenceColumns lists the reference columns that must exist and are
	// selected for the join, in order.
	ReferenceColumns []string `json:"reference_columns"`

	// JoinKeys lists the columns both tables are joined on.
	JoinKeys []string `json:"join_keys"`

	// Facets lists the filterable columns (opcion, bodega).
	Facets []string `json:"facets"`

	// ReferenceSheet is the sheet of the reference workbook this variant reads.
	ReferenceSheet string `json:"reference_sheet"`

	// DedupeQuery drops repeated query rows before the join.
	DedupeQuery bool `json:"dedupe_query"`
}

// QueryRecord is one validated row of the uploaded table.
type QueryRecord struct {
	Cur      string `json:"cur"`
	Codart   string `json:"codart"`
	Embalaje string `json:"embalaje,omitempty"`
}

// ReferenceRecord is one validated row of the reference inventory.
type ReferenceRecord struct {
	Codart string `json:"codart"`
	Cur    string `json:"cur"`
	// Nomart is the article name.
	Nomart string `json:"nomart"`
	// Cum is the secondary article code.
	Cum   string `json:"cum"`
	Carta string `json:"carta"`
	// Opcion is always >= 0.
	Opcion int    `json:"opcion"`
	Emb    string `json:"emb"`
	Bodega string `json:"bodega,omitempty"`
	// Cantidad is the lot quantity; invalid when the cell is empty or not numeric.
	Cantidad decimal.NullDecimal `json:"cantidad"`
}

// Alternative pairs a queried product with one eligible reference row.
type Alternative struct {
	Query     QueryRecord     `json:"query"`
	Reference ReferenceRecord `json:"reference"`
}

// Selection holds the facet values chosen by the user.
type Selection struct {
	Opciones []int    `json:"opcion"`
	Bodegas  []string `json:"bodega"`
}

// FacetValues holds the distinct facet values present in a result, ascending.
type FacetValues struct {
	Opciones []int    `json:"opcion"`
	Bodegas  []string `json:"bodega,omitempty"`
}

// Result is a joined (and possibly filtered) set of alternatives.
type Result struct {
	// Spec is the variant that produced the result.
	Spec *Spec

	// Alternatives holds the output rows in join order.
	Alternatives []Alternative
}
