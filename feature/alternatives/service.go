package alternatives

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"product-alternatives/core/reconcile"
	"product-alternatives/core/reference"
	"product-alternatives/core/server"
	"product-alternatives/core/storage"
	"product-alternatives/core/table"
	"product-alternatives/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrInvalidUpload wraps failures to decode the uploaded file.
	ErrInvalidUpload = errors.New("invalid upload")
	// ErrInvalidSelection is returned for facet values that cannot be parsed.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoTemplate is returned when no template location is configured.
	ErrNoTemplate = errors.New("no template configured")
)

// Session is one user interaction: an upload reconciled against a fresh
// copy of the reference inventory.
type Session struct {
	// ID is the request's RayID.
	ID        string
	Spec      *reconcile.Spec
	Query     *table.Table
	Reference *table.Table
	Result    *reconcile.Result
}

// Service runs the upload pipeline.
type Service struct {
	fetcher *reference.Fetcher
	client  storage.Client
	bucket  string
	server  server.Config
	logger  *zap.Logger
}

// NewService creates a new alternatives service. client may be nil when the
// template is served from a URL.
func NewService(fetcher *reference.Fetcher, client storage.Client, bucket string, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		client:  client,
		bucket:  bucket,
		server:  cfg,
		logger:  logger,
	}
}

// Reconcile decodes the upload, fetches the variant's reference sheet and joins them.
// Validation failures return the session with an empty result alongside the error.
func (s *Service) Reconcile(ctx context.Context, id, variant, filename string, r io.Reader) (*Session, error) {
	spec, err := reconcile.Lookup(variant)
	if err != nil {
		return nil, err
	}

	query, err := table.Read(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}

	// Reject a bad upload before paying for the reference download
	query.NormalizeColumns()
	if err := reconcile.ValidateColumns(query, reconcile.KindQuery, spec.QueryRequired); err != nil {
		return &Session{ID: id, Spec: spec, Query: query, Result: &reconcile.Result{Spec: spec}}, err
	}

	ref, err := s.fetcher.Fetch(ctx, spec.ReferenceSheet)
	if err != nil {
		return nil, err
	}

	result, err := reconcile.Reconcile(query, ref, spec)
	session := &Session{ID: id, Spec: spec, Query: query, Reference: ref, Result: result}
	if err != nil {
		return session, err
	}

	s.logger.Debug("Upload reconciled",
		zap.String("session", id),
		zap.String("variant", spec.Name),
		zap.Int("query_rows", query.Len()),
		zap.Int("reference_rows", ref.Len()),
		zap.Int("alternatives", result.Len()))
	return session, nil
}

// Template opens the upload template stored in the bucket.
func (s *Service) Template(ctx context.Context) (io.ReadCloser, error) {
	if s.server.TemplateObject == "" || s.client == nil {
		return nil, ErrNoTemplate
	}
	obj, err := s.client.GetObject(ctx, s.bucket, s.server.TemplateObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", s.server.TemplateObject, err)
	}
	return obj, nil
}

// TemplateURL returns the public template location, if any.
func (s *Service) TemplateURL() string {
	return s.server.TemplateURL
}

// ParseSelection builds a selection from raw form values.
// An opcion value may be a comma separated list. Warehouse names may
// contain commas, so each bodega value is taken whole.
func ParseSelection(opciones, bodegas []string) (reconcile.Selection, error) {
	var sel reconcile.Selection
	for _, raw := range utils.SplitList(opciones...) {
		o, err := strconv.Atoi(raw)
		if err != nil {
			return reconcile.Selection{}, fmt.Errorf("%w: opcion %q is not a number", ErrInvalidSelection, raw)
		}
		sel.Opciones = append(sel.Opciones, o)
	}
	sel.Bodegas = utils.CompactList(bodegas...)
	return sel, nil
}
