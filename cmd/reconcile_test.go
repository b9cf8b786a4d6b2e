package cmd

import (
	"bytes"
	"errors"
	"testing"

	"product-alternatives/core/table"
	"product-alternatives/feature/alternatives"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeFailWriter struct {
	bytes.Buffer
	err    error
	closed bool
}

func (w *closeFailWriter) Close() error {
	w.closed = true
	return w.err
}

func TestWriteWorkbook(t *testing.T) {
	tbl := table.New("cur", "codart", "bodega")
	tbl.Append([]string{"C1", "A1", "NORTE, CALI"})

	t.Run("Written", func(t *testing.T) {
		w := &closeFailWriter{}
		require.NoError(t, writeWorkbook(w, tbl))
		assert.True(t, w.closed)

		out, err := table.ReadXLSX(bytes.NewReader(w.Bytes()), alternatives.ExportSheet)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"C1", "A1", "NORTE, CALI"}}, out.Rows)
	})

	t.Run("CloseError", func(t *testing.T) {
		diskFull := errors.New("no space left on device")
		w := &closeFailWriter{err: diskFull}
		err := writeWorkbook(w, tbl)
		assert.ErrorIs(t, err, diskFull)
		assert.True(t, w.closed)
	})
}
