package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"product-alternatives/core/config"
	"product-alternatives/core/logger"
	"product-alternatives/core/reconcile"
	"product-alternatives/core/table"
	"product-alternatives/feature/alternatives"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	inputFile  string
	outputFile string
	opcionFlag []string
	bodegaFlag []string
)

// reconcileCmd runs the upload pipeline against a local file.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <variant>",
	Short: "Find alternatives for the products in a local file",
	Long: `Reads a CSV or XLSX file, joins it with the reference inventory and filters
the result by the selected options.

Without --opcion or --bodega nothing is exported; the report lists the values
available for selection.

Examples:
  # Report alternatives and available options
  reconcile fomag --input pedido.xlsx

  # Export options 1 and 2 from warehouse NORTE
  reconcile fomag --input pedido.xlsx --opcion 1,2 --bodega NORTE --output alternativas_filtradas.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV or XLSX file with the requested products")
	reconcileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the filtered alternatives to this XLSX file")
	reconcileCmd.Flags().StringSliceVar(&opcionFlag, "opcion", nil, "Options to keep (repeatable or comma separated)")
	reconcileCmd.Flags().StringArrayVar(&bodegaFlag, "bodega", nil, "Warehouse to keep, fomag only (repeatable)")
	_ = reconcileCmd.MarkFlagRequired("input")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	sel, err := alternatives.ParseSelection(opcionFlag, bodegaFlag)
	if err != nil {
		return err
	}

	fetcher, store, err := openReference(cfg, l)
	if err != nil {
		return err
	}
	svc := alternatives.NewService(fetcher, store, cfg.Storage.Bucket, cfg.Server, l)

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	session, err := svc.Reconcile(ctx, uuid.NewString(), args[0], inputFile, f)
	if err != nil {
		return err
	}

	result := session.Result
	printReconcileReport(l, session)
	if result.Empty() {
		l.Info("No alternatives were found for the requested products")
		return nil
	}

	filtered, err := result.Filter(sel)
	if errors.Is(err, reconcile.ErrNothingSelected) {
		l.Info("No options selected. Use --opcion or --bodega to choose what to export.")
		return nil
	}
	l.Info("Selection applied",
		zap.Ints("opcion", sel.Opciones),
		zap.Strings("bodega", sel.Bodegas),
		zap.Int("rows", filtered.Len()))

	if outputFile == "" {
		l.Info("No --output given, nothing written")
		return nil
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := writeWorkbook(out, filtered.Table()); err != nil {
		return err
	}
	l.Info("Alternatives exported", zap.String("file", outputFile), zap.Int("rows", filtered.Len()))
	return nil
}

// writeWorkbook writes t as the export workbook and closes w.
// A failed close means the file is incomplete and is reported as an error.
func writeWorkbook(w io.WriteCloser, t *table.Table) error {
	if err := table.WriteXLSX(w, t, alternatives.ExportSheet); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// printReconcileReport logs the join summary and a sample of rows.
func printReconcileReport(l *zap.Logger, session *alternatives.Session) {
	result := session.Result
	facets := result.Facets()

	l.Info("Reconciliation report",
		zap.String("variant", session.Spec.Name),
		zap.Int("query_rows", session.Query.Len()),
		zap.Int("reference_rows", session.Reference.Len()),
		zap.Int("alternatives", result.Len()),
		zap.Ints("opciones", facets.Opciones),
		zap.Strings("bodegas", facets.Bodegas),
	)

	out := result.Table()
	maxShow := 5
	if out.Len() < maxShow {
		maxShow = out.Len()
	}
	for i := 0; i < maxShow; i++ {
		fields := make([]zap.Field, 0, len(out.Columns))
		for j, col := range out.Columns {
			fields = append(fields, zap.String(col, out.Rows[i][j]))
		}
		l.Info("Sample alternative", fields...)
	}
	if out.Len() > maxShow {
		l.Info("Additional alternatives not shown", zap.Int("count", out.Len()-maxShow))
	}
}
