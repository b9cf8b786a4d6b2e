package reconcile

import (
	"fmt"
	"sort"
)

var inventoryColumns = []string{ColCodart, ColCur, ColNomart, ColCum, ColCarta, ColOpcion, ColEmb}

// Basico joins on cur only; the article code of each alternative comes from the inventory.
var Basico = Spec{
	Name:             "basico",
	Description:      "Alternatives by cur",
	QueryRequired:    []string{ColCur, ColCodart},
	QuerySelect:      []string{ColCur},
	ReferenceColumns: inventoryColumns,
	JoinKeys:         []string{ColCur},
	Facets:           []string{ColOpcion},
	ReferenceSheet:   "inventario",
	DedupeQuery:      true,
}

// Embalaje joins on cur and codart and carries the requested packaging.
var Embalaje = Spec{
	Name:             "embalaje",
	Description:      "Alternatives by cur and codart with requested packaging",
	QueryRequired:    []string{ColCur, ColCodart, ColEmbalaje},
	QuerySelect:      []string{ColCur, ColCodart, ColEmbalaje},
	ReferenceColumns: inventoryColumns,
	JoinKeys:         []string{ColCur, ColCodart},
	Facets:           []string{ColOpcion},
	ReferenceSheet:   "inventario",
	DedupeQuery:      true,
}

// Fomag is the warehouse-aware variant: it adds bodega and lot quantity and
// exposes bodega as a second facet.
var Fomag = Spec{
	Name:             "fomag",
	Description:      "FOMAG alternatives by cur and codart per warehouse",
	QueryRequired:    []string{ColCur, ColCodart, ColEmbalaje},
	QuerySelect:      []string{ColCur, ColCodart, ColEmbalaje},
	ReferenceColumns: append(append([]string(nil), inventoryColumns...), ColBodega, ColCantidad),
	JoinKeys:         []string{ColCur, ColCodart},
	Facets:           []string{ColOpcion, ColBodega},
	ReferenceSheet:   "fomag",
	DedupeQuery:      true,
}

var registry = map[string]*Spec{
	Basico.Name:   &Basico,
	Embalaje.Name: &Embalaje,
	Fomag.Name:    &Fomag,
}

// Lookup returns the registered variant with the given name.
func Lookup(name string) (*Spec, error) {
	spec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return spec, nil
}

// Variants returns every registered variant sorted by name.
func Variants() []*Spec {
	specs := make([]*Spec, 0, len(registry))
	for _, s := range registry {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}
