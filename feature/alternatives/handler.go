package alternatives

import (
	"bytes"
	"errors"
	"fmt"

	"product-alternatives/core/logger"
	"product-alternatives/core/middleware/rayid"
	"product-alternatives/core/reconcile"
	"product-alternatives/core/reference"
	"product-alternatives/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExportFilename is the download name of the filtered workbook.
const ExportFilename = "alternativas_filtradas.xlsx"

// ExportSheet names the single sheet of the exported workbook.
const ExportSheet = "alternativas"

const (
	StatusOK               = "ok"
	StatusNoAlternatives   = "no_alternatives"
	StatusNothingSelected  = "nothing_selected"
	StatusInvalidUpload    = "invalid_upload"
	StatusReferenceInvalid = "reference_invalid"
)

const (
	msgNoAlternatives  = "No alternatives were found for the uploaded products."
	msgNothingSelected = "No options selected. Choose at least one value to filter."
)

// FilteredRows is the part of the result that matches the selection.
type FilteredRows struct {
	Count int        `json:"count"`
	Rows  [][]string `json:"rows"`
}

// Response is the reconciled view of an upload.
type Response struct {
	Status   string                `json:"status"`
	Message  string                `json:"message,omitempty"`
	Session  string                `json:"session,omitempty"`
	Variant  string                `json:"variant"`
	Columns  []string              `json:"columns"`
	Rows     [][]string            `json:"rows"`
	Total    int                   `json:"total"`
	Facets   reconcile.FacetValues `json:"facets"`
	Selected *reconcile.Selection  `json:"selected,omitempty"`
	Filtered *FilteredRows         `json:"filtered,omitempty"`
}

// Handler handles HTTP requests for the alternatives feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the alternatives routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/alternatives")
	group.Get("/variants", h.HandleVariants)
	group.Get("/template", h.HandleTemplate)
	group.Post("/:variant", h.HandleUpload)
	group.Post("/:variant/export", h.HandleExport)
}

// HandleVariants lists the available variants.
// @Summary List Variants
// @Description Lists the variants with the columns each one requires and returns.
// @Tags alternatives
// @Produce json
// @Success 200 {array} reconcile.Spec
// @Router /alternatives/variants [get]
func (h *Handler) HandleVariants(c *fiber.Ctx) error {
	return c.JSON(reconcile.Variants())
}

// HandleTemplate serves the blank upload template.
// @Summary Download Template
// @Description Streams the upload template from the bucket, or redirects to its public URL.
// @Tags alternatives
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Template workbook"
// @Success 302 "Redirect to the template URL"
// @Failure 404 {object} map[string]string "No template configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alternatives/template [get]
func (h *Handler) HandleTemplate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	obj, err := h.service.Template(c.Context())
	switch {
	case err == nil:
		c.Set(fiber.HeaderContentType, table.ContentTypeXLSX)
		c.Attachment(h.service.server.TemplateObject)
		return c.SendStream(obj)
	case errors.Is(err, ErrNoTemplate):
		if url := h.service.TemplateURL(); url != "" {
			return c.Redirect(url, fiber.StatusFound)
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Template download failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleUpload reconciles an uploaded file against the reference inventory.
// @Summary Reconcile Upload
// @Description Joins the uploaded products with the reference inventory. Optional opcion/bodega values filter the result.
// @Tags alternatives
// @Accept multipart/form-data
// @Produce json
// @Param variant path string true "Variant (basico, embalaje, fomag)"
// @Param file formData file true "CSV or XLSX file"
// @Param opcion formData string false "Selected options, comma separated"
// @Param bodega formData string false "Selected warehouse, repeat the field for several"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown variant"
// @Failure 422 {object} map[string]interface{} "Missing columns in upload"
// @Failure 502 {object} map[string]interface{} "Invalid reference inventory"
// @Failure 503 {object} map[string]interface{} "Reference inventory unavailable"
// @Router /alternatives/{variant} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	session, sel, err := h.reconcile(c)
	if err != nil {
		return h.fail(c, err)
	}

	result := session.Result
	out := result.Table()
	resp := Response{
		Status:  StatusOK,
		Session: session.ID,
		Variant: session.Spec.Name,
		Columns: out.Columns,
		Rows:    out.Rows,
		Total:   result.Len(),
		Facets:  result.Facets(),
	}

	if result.Empty() {
		resp.Status = StatusNoAlternatives
		resp.Message = msgNoAlternatives
		return c.JSON(resp)
	}

	filtered, err := result.Filter(sel)
	if errors.Is(err, reconcile.ErrNothingSelected) {
		resp.Status = StatusNothingSelected
		resp.Message = msgNothingSelected
		return c.JSON(resp)
	}

	resp.Selected = &sel
	resp.Filtered = &FilteredRows{Count: filtered.Len(), Rows: filtered.Table().Rows}
	return c.JSON(resp)
}

// HandleExport returns the filtered alternatives as a workbook.
// @Summary Export Alternatives
// @Description Runs the same pipeline as the upload and returns the filtered rows as XLSX.
// @Tags alternatives
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param variant path string true "Variant (basico, embalaje, fomag)"
// @Param file formData file true "CSV or XLSX file"
// @Param opcion formData string false "Selected options, comma separated"
// @Param bodega formData string false "Selected warehouse, repeat the field for several"
// @Success 200 {file} file "alternativas_filtradas.xlsx"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]interface{} "Missing columns in upload"
// @Failure 503 {object} map[string]interface{} "Reference inventory unavailable"
// @Router /alternatives/{variant}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	session, sel, err := h.reconcile(c)
	if err != nil {
		return h.fail(c, err)
	}

	if session.Result.Empty() {
		return c.JSON(fiber.Map{"status": StatusNoAlternatives, "message": msgNoAlternatives})
	}

	filtered, err := session.Result.Filter(sel)
	if errors.Is(err, reconcile.ErrNothingSelected) {
		return c.JSON(fiber.Map{"status": StatusNothingSelected, "message": msgNothingSelected})
	}

	var buf bytes.Buffer
	if err := table.WriteXLSX(&buf, filtered.Table(), ExportSheet); err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Alternatives exported",
		zap.String("variant", session.Spec.Name),
		zap.Int("rows", filtered.Len()))

	c.Set(fiber.HeaderContentType, table.ContentTypeXLSX)
	c.Attachment(ExportFilename)
	return c.Send(buf.Bytes())
}

// reconcile reads the upload and selection from the request and runs the join.
func (h *Handler) reconcile(c *fiber.Ctx) (*Session, reconcile.Selection, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, reconcile.Selection{}, fmt.Errorf("%w: file is required", ErrInvalidUpload)
	}

	sel, err := ParseSelection(formValues(c, "opcion"), formValues(c, "bodega"))
	if err != nil {
		return nil, reconcile.Selection{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, reconcile.Selection{}, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}
	defer f.Close()

	session, err := h.service.Reconcile(c.Context(), rayid.Get(c), c.Params("variant"), fh.Filename, f)
	return session, sel, err
}

// formValues collects a repeated field from the multipart form and the query string.
func formValues(c *fiber.Ctx, key string) []string {
	var values []string
	if form, err := c.MultipartForm(); err == nil {
		values = append(values, form.Value[key]...)
	}
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}

// fail maps pipeline errors to HTTP responses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	var mce *reconcile.MissingColumnsError
	switch {
	case errors.Is(err, reconcile.ErrUnknownVariant):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, ErrInvalidUpload), errors.Is(err, ErrInvalidSelection):
		l.Warn("Rejected upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, reconcile.ErrInvalidQuery) && errors.As(err, &mce):
		l.Warn("Upload is missing columns", zap.Strings("missing", mce.Missing))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":   StatusInvalidUpload,
			"error":    err.Error(),
			"required": mce.Required,
			"missing":  mce.Missing,
		})

	case errors.Is(err, reconcile.ErrInvalidReference),
		errors.Is(err, table.ErrSheetNotFound),
		errors.Is(err, table.ErrNoHeader):
		l.Error("Reference inventory is invalid", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status": StatusReferenceInvalid,
			"error":  err.Error(),
		})

	case errors.Is(err, reference.ErrReferenceUnavailable):
		l.Error("Reference inventory unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
			"retry": true,
		})

	default:
		l.Error("Reconcile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
