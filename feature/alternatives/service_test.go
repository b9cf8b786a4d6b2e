package alternatives

import (
	"context"
	"strings"
	"testing"

	"product-alternatives/core/reconcile"
	"product-alternatives/core/reference"
	"product-alternatives/core/server"
	"product-alternatives/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedSource struct {
	t *table.Table
}

func (s fixedSource) Name() string { return "fixed" }

func (s fixedSource) Fetch(ctx context.Context, sheet string) (*table.Table, error) {
	return s.t, nil
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name     string
		opciones []string
		bodegas  []string
		want     reconcile.Selection
		wantErr  bool
	}{
		{"Empty", nil, nil, reconcile.Selection{}, false},
		{"Repeated", []string{"1", "2"}, []string{"NORTE"}, reconcile.Selection{Opciones: []int{1, 2}, Bodegas: []string{"NORTE"}}, false},
		{"CommaSeparatedOpcion", []string{"1, 3"}, []string{"NORTE", " ", "SUR"}, reconcile.Selection{Opciones: []int{1, 3}, Bodegas: []string{"NORTE", "SUR"}}, false},
		{"BodegaWithComma", nil, []string{"NORTE, CALI"}, reconcile.Selection{Bodegas: []string{"NORTE, CALI"}}, false},
		{"NotANumber", []string{"x"}, nil, reconcile.Selection{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.opciones, tt.bodegas)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Reconcile(t *testing.T) {
	ref := table.New("codart", "cur", "nomart", "cum", "carta", "opcion", "emb")
	ref.Append([]string{"A1", "C1", "Acetaminofen", "CUM1", "POS", "1", "UND"})
	ref.Append([]string{"A7", "C1", "Acetaminofen jarabe", "CUM7", "POS", "2", "FCO"})

	svc := NewService(reference.NewFetcher(fixedSource{ref}, 0, nil), nil, "inventario", server.Config{}, zap.NewNop())

	session, err := svc.Reconcile(context.Background(), "ray-1", "basico", "pedido.csv", strings.NewReader("CUR,CODART\nC1,A1\nC1,A1\n"))
	require.NoError(t, err)
	assert.Equal(t, "ray-1", session.ID)
	assert.Equal(t, "basico", session.Spec.Name)
	assert.Equal(t, 2, session.Result.Len())

	// The fetched reference is a copy
	assert.Equal(t, "codart", ref.Columns[0])
	assert.Equal(t, 2, session.Reference.Len())
}

func TestService_Template(t *testing.T) {
	svc := NewService(nil, nil, "inventario", server.Config{TemplateURL: "https://example.com/t.xlsx"}, zap.NewNop())

	_, err := svc.Template(context.Background())
	assert.ErrorIs(t, err, ErrNoTemplate)
	assert.Equal(t, "https://example.com/t.xlsx", svc.TemplateURL())
}
