package reference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"product-alternatives/core/reconcile"
	"product-alternatives/core/storage"
	"product-alternatives/core/table"

	"github.com/minio/minio-go/v7"
)

// SheetReport describes how one variant's sheet looks in a workbook.
type SheetReport struct {
	Variant string   `json:"variant"`
	Sheet   string   `json:"sheet"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
	Missing []string `json:"missing,omitempty"`
}

// OK reports whether the sheet has every column the variant needs.
func (r SheetReport) OK() bool {
	return len(r.Missing) == 0
}

// Inspect checks a fetched sheet against a variant's reference columns.
// The table's headers are normalized in place.
func Inspect(t *table.Table, spec *reconcile.Spec) SheetReport {
	t.NormalizeColumns()
	return SheetReport{
		Variant: spec.Name,
		Sheet:   spec.ReferenceSheet,
		Rows:    t.Len(),
		Columns: t.Columns,
		Missing: t.Missing(spec.ReferenceColumns...),
	}
}

// ValidateWorkbook reads every variant's sheet from the workbook and reports on each.
// It fails if a sheet is absent or lacks a required column.
func ValidateWorkbook(data []byte) ([]SheetReport, error) {
	var reports []SheetReport
	var errs []error

	for _, spec := range reconcile.Variants() {
		t, err := table.ReadXLSX(bytes.NewReader(data), spec.ReferenceSheet)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", spec.Name, err))
			continue
		}
		report := Inspect(t, spec)
		reports = append(reports, report)
		if !report.OK() {
			errs = append(errs, &reconcile.MissingColumnsError{
				Kind:     reconcile.KindReference,
				Required: spec.ReferenceColumns,
				Missing:  report.Missing,
			})
		}
	}
	return reports, errors.Join(errs...)
}

// Publish validates a workbook and uploads it as the reference object.
// Nothing is uploaded when validation fails.
func Publish(ctx context.Context, client storage.Client, bucket, object string, r io.Reader) (minio.UploadInfo, []SheetReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	reports, err := ValidateWorkbook(data)
	if err != nil {
		return minio.UploadInfo{}, reports, err
	}

	info, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: table.ContentTypeXLSX,
	})
	if err != nil {
		return minio.UploadInfo{}, reports, fmt.Errorf("failed to upload %s/%s: %w", bucket, object, err)
	}
	return info, reports, nil
}
