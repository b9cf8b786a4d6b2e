package reference

import (
	"context"

	"product-alternatives/core/reconcile"
	coreref "product-alternatives/core/reference"
	"product-alternatives/core/storage"

	"go.uber.org/zap"
)

const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)

// Report is the result of checking one variant's reference sheet.
type Report struct {
	coreref.SheetReport
	Source string `json:"source"`
	Status string `json:"status"`
}

// Service checks the reference inventory.
type Service struct {
	fetcher *coreref.Fetcher
	client  storage.Client
	bucket  string
	objects []string
	logger  *zap.Logger
}

// NewService creates a new reference check service. objects lists the bucket
// objects the storage check expects; client may be nil.
func NewService(fetcher *coreref.Fetcher, client storage.Client, bucket string, objects []string, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		client:  client,
		bucket:  bucket,
		objects: objects,
		logger:  logger,
	}
}

// CheckStorage reports on the expected bucket objects.
func (s *Service) CheckStorage(ctx context.Context) ([]ObjectStatus, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return CheckObjects(ctx, s.client, s.bucket, s.objects)
}

// Check fetches the variant's sheet and reports on its columns.
func (s *Service) Check(ctx context.Context, variant string) (*Report, error) {
	spec, err := reconcile.Lookup(variant)
	if err != nil {
		return nil, err
	}

	t, err := s.fetcher.Fetch(ctx, spec.ReferenceSheet)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SheetReport: coreref.Inspect(t, spec),
		Source:      s.fetcher.Source().Name(),
		Status:      StatusOK,
	}
	if !report.OK() {
		report.Status = StatusInvalid
		s.logger.Warn("Reference sheet is missing columns",
			zap.String("variant", spec.Name),
			zap.String("sheet", spec.ReferenceSheet),
			zap.Strings("missing", report.Missing))
	}
	return report, nil
}

// CheckAll checks every variant. A failed fetch is reported as an error entry.
func (s *Service) CheckAll(ctx context.Context) map[string]interface{} {
	out := make(map[string]interface{})
	for _, spec := range reconcile.Variants() {
		report, err := s.Check(ctx, spec.Name)
		if err != nil {
			out[spec.Name] = map[string]interface{}{"status": "error", "error": err.Error()}
			continue
		}
		out[spec.Name] = report
	}
	return out
}
