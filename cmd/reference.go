package cmd

import (
	"fmt"
	"os"

	"product-alternatives/core/config"
	"product-alternatives/core/logger"
	"product-alternatives/core/reconcile"
	"product-alternatives/core/reference"
	"product-alternatives/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishObject string

// referenceCmd is the parent command for reference inventory operations.
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect and publish the reference inventory",
}

// referenceCheckCmd fetches reference sheets and reports missing columns.
var referenceCheckCmd = &cobra.Command{
	Use:   "check [variant]",
	Short: "Check that the reference sheets have the required columns",
	Long:  `Fetches the reference sheet of the given variant, or of every variant, from the configured source.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		fetcher, _, err := openReference(cfg, l)
		if err != nil {
			return err
		}

		specs := reconcile.Variants()
		if len(args) == 1 {
			spec, err := reconcile.Lookup(args[0])
			if err != nil {
				return err
			}
			specs = []*reconcile.Spec{spec}
		}

		failed := 0
		for _, spec := range specs {
			t, err := fetcher.Fetch(cmd.Context(), spec.ReferenceSheet)
			if err != nil {
				l.Error("Reference fetch failed", zap.String("variant", spec.Name), zap.Error(err))
				failed++
				continue
			}
			report := reference.Inspect(t, spec)
			printSheetReport(l, report)
			if !report.OK() || report.Rows == 0 {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d reference checks failed", failed, len(specs))
		}
		return nil
	},
}

// referencePublishCmd validates a workbook and uploads it to the bucket.
var referencePublishCmd = &cobra.Command{
	Use:   "publish <file.xlsx>",
	Short: "Validate and upload a new reference workbook",
	Long: `Checks that the workbook has every variant's sheet with the required columns
and uploads it to the storage bucket. Nothing is uploaded if a check fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open workbook: %w", err)
		}
		defer f.Close()

		object := publishObject
		if object == "" {
			object = cfg.Reference.Object
		}

		info, reports, err := reference.Publish(cmd.Context(), client, cfg.Storage.Bucket, object, f)
		for _, r := range reports {
			printSheetReport(l, r)
		}
		if err != nil {
			return err
		}

		l.Info("Reference workbook published",
			zap.String("bucket", info.Bucket),
			zap.String("object", info.Key),
			zap.String("version_id", info.VersionID),
			zap.Int64("size", info.Size))
		return nil
	},
}

func printSheetReport(l *zap.Logger, r reference.SheetReport) {
	fields := []zap.Field{
		zap.String("variant", r.Variant),
		zap.String("sheet", r.Sheet),
		zap.Int("rows", r.Rows),
	}
	if !r.OK() {
		l.Warn("Reference sheet is missing columns", append(fields, zap.Strings("missing", r.Missing))...)
		return
	}
	if r.Rows == 0 {
		l.Warn("Reference sheet is empty", fields...)
		return
	}
	l.Info("Reference sheet OK", fields...)
}

func init() {
	referencePublishCmd.Flags().StringVar(&publishObject, "object", "", "Object key (defaults to reference.object)")

	referenceCmd.AddCommand(referenceCheckCmd)
	referenceCmd.AddCommand(referencePublishCmd)
	RootCmd.AddCommand(referenceCmd)
}
