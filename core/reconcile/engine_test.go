package reconcile

import (
	"errors"
	"testing"

	"product-alternatives/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inventory builds a reference table with the fomag column set.
func inventory(rows ...[]string) *table.Table {
	t := table.New("CODART", "Cur", "nomart", "cum", "carta", "Opcion", "emb", "bodega", "cantidad")
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func queryTable(cols []string, rows ...[]string) *table.Table {
	t := table.New(cols...)
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func TestReconcile_TwoOptionsSameProduct(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C1", "A1", "CAJA"})
	r := inventory(
		[]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "1", "UND"},
		[]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "2", "UND"},
	)

	result, err := Reconcile(q, r, &Embalaje)
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	for _, a := range result.Alternatives {
		assert.Equal(t, "CAJA", a.Query.Embalaje)
	}
	assert.Equal(t, 1, result.Alternatives[0].Reference.Opcion)
	assert.Equal(t, 2, result.Alternatives[1].Reference.Opcion)
}

func TestReconcile_UnknownCurIsDropped(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C9", "A9", "CAJA"})
	r := inventory([]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "1", "UND"})

	result, err := Reconcile(q, r, &Embalaje)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestReconcile_ReferenceMissingOpcion(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C1", "A1", "CAJA"})
	r := table.New("codart", "cur", "nomart", "cum", "carta", "emb")
	r.Append([]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "UND"})

	result, err := Reconcile(q, r, &Embalaje)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidReference))
	assert.False(t, errors.Is(err, ErrInvalidQuery))

	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{ColOpcion}, mce.Missing)
	assert.True(t, result.Empty())
}

func TestReconcile_QueryMissingColumns(t *testing.T) {
	q := queryTable([]string{"CUR", "codart"}, []string{"C1", "A1"})
	r := inventory([]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "1", "UND"})

	result, err := Reconcile(q, r, &Embalaje)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidQuery))
	assert.Contains(t, err.Error(), "cur, codart, embalaje")
	assert.NotNil(t, result)
	assert.True(t, result.Empty())
}

func TestReconcile_HeadersAreNormalized(t *testing.T) {
	q := queryTable([]string{" CUR ", "CodArt", "EMBALAJE"}, []string{"C1", "A1", "CAJA"})
	r := inventory([]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "1", "UND"})

	result, err := Reconcile(q, r, &Embalaje)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Len())
	assert.Equal(t, []string{"cur", "codart", "embalaje"}, q.Columns)
}

func TestReconcile_KeysComeFromQuery(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"},
		[]string{"C1", "A1", "CAJA"},
		[]string{"C2", "A2", "BLISTER"},
	)
	r := inventory(
		[]string{"A1", "C1", "n1", "", "", "1", "UND"},
		[]string{"A2", "C2", "n2", "", "", "1", "UND"},
		[]string{"A3", "C3", "n3", "", "", "1", "UND"},
		[]string{"A9", "C1", "other codart", "", "", "3", "UND"},
	)

	for _, spec := range Variants() {
		t.Run(spec.Name, func(t *testing.T) {
			result, err := Reconcile(q, r, spec)
			require.NoError(t, err)
			require.False(t, result.Empty())
			for _, a := range result.Alternatives {
				assert.Contains(t, []string{"C1", "C2"}, a.Reference.Cur)
				assert.Equal(t, a.Query.Cur, a.Reference.Cur)
			}
		})
	}
}

func TestReconcile_JoinKeysPerVariant(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C1", "A1", "CAJA"})
	r := inventory(
		[]string{"A1", "C1", "same codart", "", "", "1", "UND"},
		[]string{"A9", "C1", "other codart", "", "", "2", "UND"},
	)

	basico, err := Reconcile(q, r, &Basico)
	require.NoError(t, err)
	assert.Equal(t, 2, basico.Len(), "basico joins on cur only")

	embalaje, err := Reconcile(q, r, &Embalaje)
	require.NoError(t, err)
	assert.Equal(t, 1, embalaje.Len(), "embalaje joins on cur and codart")
}

func TestReconcile_DeduplicatesOutput(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"},
		[]string{"C1", "A1", "CAJA"},
		[]string{"C1", "A1", "CAJA"},
	)
	r := inventory(
		[]string{"A1", "C1", "n1", "CUM1", "POS", "1", "UND", "B1", "10"},
		[]string{"A1", "C1", "n1", "CUM1", "POS", "1", "UND", "B1", "10.0"},
		[]string{"A1", "C1", "n1", "CUM1", "POS", "1", "UND", "B1", "5"},
	)

	result, err := Reconcile(q, r, &Fomag)
	require.NoError(t, err)

	// Lots with equal quantity collapse, different quantities survive
	assert.Equal(t, 2, result.Len())

	seen := map[string]bool{}
	for _, a := range result.Alternatives {
		k := rowKey(Fomag.Row(a))
		assert.False(t, seen[k], "duplicate tuple %s", k)
		seen[k] = true
	}
}

func TestReconcile_OpcionCoercion(t *testing.T) {
	q := queryTable([]string{"cur", "codart"}, []string{"C1", "A1"})
	r := inventory(
		[]string{"A1", "C1", "missing", "", "", "", "UND"},
		[]string{"A2", "C1", "garbage", "", "", "n/a", "UND"},
		[]string{"A3", "C1", "float", "", "", "3.0", "UND"},
		[]string{"A4", "C1", "negative", "", "", "-2", "UND"},
		[]string{"A5", "C1", "int", "", "", "7", "UND"},
	)

	result, err := Reconcile(q, r, &Basico)
	require.NoError(t, err)
	require.Equal(t, 5, result.Len())

	got := make([]int, 0, 5)
	for _, a := range result.Alternatives {
		got = append(got, a.Reference.Opcion)
	}
	assert.Equal(t, []int{0, 0, 3, 0, 7}, got)
}

func TestReconcile_OutputTable(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje", "notas"}, []string{"C1", "A1", "CAJA", "ignored"})
	r := inventory([]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "2", "UND", "B1", "12.50"})

	result, err := Reconcile(q, r, &Fomag)
	require.NoError(t, err)

	out := result.Table()
	assert.Equal(t, []string{"cur", "codart", "embalaje", "nomart", "cum", "carta", "opcion", "emb", "bodega", "cantidad"}, out.Columns)
	assert.Equal(t, [][]string{{"C1", "A1", "CAJA", "Acetaminofen", "CUM1", "POS", "2", "UND", "B1", "12.5"}}, out.Rows)

	basico, err := Reconcile(q, r, &Basico)
	require.NoError(t, err)
	assert.Equal(t, []string{"cur", "codart", "nomart", "cum", "carta", "opcion", "emb"}, basico.Table().Columns)
}

func TestRun(t *testing.T) {
	q := queryTable([]string{"cur", "codart", "embalaje"}, []string{"C1", "A1", "CAJA"})
	r := inventory(
		[]string{"A1", "C1", "n", "", "", "1", "UND"},
		[]string{"A1", "C1", "n", "", "", "2", "UND"},
	)

	filtered, err := Run(q, r, &Embalaje, Selection{Opciones: []int{2}})
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, 2, filtered.Alternatives[0].Reference.Opcion)

	_, err = Run(q, r, &Embalaje, Selection{})
	assert.ErrorIs(t, err, ErrNothingSelected)
}

func TestSpecs_Validate(t *testing.T) {
	for _, spec := range Variants() {
		t.Run(spec.Name, func(t *testing.T) {
			assert.NoError(t, spec.Validate())
		})
	}

	broken := Spec{Name: "broken", QueryRequired: []string{ColCodart}, QuerySelect: []string{ColCodart}, JoinKeys: []string{ColCodart}}
	assert.Error(t, broken.Validate())

	clash := Embalaje
	clash.Name = "clash"
	clash.ReferenceColumns = append(append([]string(nil), inventoryColumns...), ColEmbalaje)
	assert.Error(t, clash.Validate())
}

func TestLookup(t *testing.T) {
	spec, err := Lookup("fomag")
	require.NoError(t, err)
	assert.Equal(t, "fomag", spec.ReferenceSheet)

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
