package reference

import (
	"errors"

	"product-alternatives/core/logger"
	"product-alternatives/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reference checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reference routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reference")
	group.Get("/", h.HandleCheckAll)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/:variant", h.HandleCheck)
}

// HandleCheckAll checks the reference sheets of every variant.
// @Summary Check All Reference Sheets
// @Description Fetches the reference sheet of every variant and reports missing columns.
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{} "Reports by variant"
// @Router /reference [get]
func (h *Handler) HandleCheckAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Checking all reference sheets")
	return c.JSON(h.service.CheckAll(c.Context()))
}

// HandleStorageCheck checks the bucket objects the service depends on.
// @Summary Check Storage Objects
// @Description Verifies the bucket exists and that the reference workbook and template objects are present.
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{} "Object statuses"
// @Failure 404 {object} map[string]string "Storage not configured"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /reference/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	statuses, err := h.service.CheckStorage(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoStorage) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
			"retry": true,
		})
	}

	missing := 0
	for _, s := range statuses {
		if !s.Exists {
			missing++
		}
	}
	if missing > 0 {
		l.Warn("Storage objects missing", zap.Int("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"bucket":  h.service.bucket,
		"objects": statuses,
	})
}

// HandleCheck checks one variant's reference sheet.
// @Summary Check Reference Sheet
// @Description Fetches the variant's reference sheet and reports row count, columns and missing required columns.
// @Tags reference
// @Produce json
// @Param variant path string true "Variant (basico, embalaje, fomag)"
// @Success 200 {object} Report
// @Failure 404 {object} map[string]string "Unknown variant"
// @Failure 503 {object} map[string]interface{} "Reference inventory unavailable"
// @Router /reference/{variant} [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Check(c.Context(), c.Params("variant"))
	if err != nil {
		if errors.Is(err, reconcile.ErrUnknownVariant) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Reference check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
			"retry": true,
		})
	}
	return c.JSON(report)
}
