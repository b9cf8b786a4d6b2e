package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fomagResult(t *testing.T) *Result {
	t.Helper()
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C1", "A1", "CAJA"})
	r := inventory(
		[]string{"A1", "C1", "n", "", "", "2", "UND", "NORTE", "1"},
		[]string{"A1", "C1", "n", "", "", "1", "UND", "SUR", "1"},
		[]string{"A1", "C1", "n", "", "", "1", "UND", "NORTE", "1"},
		[]string{"A1", "C1", "n", "", "", "", "UND", "CENTRO", "1"},
	)
	result, err := Reconcile(q, r, &Fomag)
	require.NoError(t, err)
	require.Equal(t, 4, result.Len())
	return result
}

func TestFacets_SortedDistinct(t *testing.T) {
	facets := fomagResult(t).Facets()
	assert.Equal(t, []int{0, 1, 2}, facets.Opciones)
	assert.Equal(t, []string{"CENTRO", "NORTE", "SUR"}, facets.Bodegas)
}

func TestFacets_NoBodegaOutsideFomag(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C1", "A1", "CAJA"})
	r := inventory([]string{"A1", "C1", "n", "", "", "1", "UND", "NORTE"})
	result, err := Reconcile(q, r, &Embalaje)
	require.NoError(t, err)

	facets := result.Facets()
	assert.Equal(t, []int{1}, facets.Opciones)
	assert.Nil(t, facets.Bodegas)
}

func TestFilter_NothingSelected(t *testing.T) {
	result := fomagResult(t)

	filtered, err := result.Filter(Selection{})
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Nil(t, filtered)

	// bodega is not a facet of embalaje, so it does not count as a selection
	result.Spec = &Embalaje
	_, err = result.Filter(Selection{Bodegas: []string{"NORTE"}})
	assert.ErrorIs(t, err, ErrNothingSelected)
}

func TestFilter_Combinations(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want int
	}{
		{"Opcion Only", Selection{Opciones: []int{1}}, 2},
		{"Bodega Only", Selection{Bodegas: []string{"NORTE"}}, 2},
		{"Both AND", Selection{Opciones: []int{1}, Bodegas: []string{"NORTE"}}, 1},
		{"Several Values OR", Selection{Opciones: []int{0, 2}}, 2},
		{"Filtered To Nothing", Selection{Opciones: []int{9}}, 0},
	}

	result := fomagResult(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := result.Filter(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filtered.Len())
			for _, a := range filtered.Alternatives {
				if len(tt.sel.Opciones) > 0 {
					assert.Contains(t, tt.sel.Opciones, a.Reference.Opcion)
				}
				if len(tt.sel.Bodegas) > 0 {
					assert.Contains(t, tt.sel.Bodegas, a.Reference.Bodega)
				}
			}
		})
	}

	// Filtering never mutates the joined result
	assert.Equal(t, 4, result.Len())
}
