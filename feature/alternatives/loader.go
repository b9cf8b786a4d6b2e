package alternatives

import (
	"product-alternatives/core/reference"
	"product-alternatives/core/server"
	"product-alternatives/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Alternatives feature.
func NewFeature(fetcher *reference.Fetcher, client storage.Client, bucket string, cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(fetcher, client, bucket, cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "alternatives"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.fetcher != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
