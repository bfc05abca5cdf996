package diff

import (
	"errors"
	"fmt"

	"json-diff/core/logger"
	"json-diff/core/reconcile"
	"json-diff/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FilesResponse lists the collections of the configured source.
type FilesResponse struct {
	Source string   `json:"source"`
	Files  []string `json:"files"`
}

// KeysResponse holds the keys of one collection.
type KeysResponse struct {
	File string   `json:"file"`
	Keys []string `json:"keys"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the diff routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/diff")
	group.Get("/files", h.HandleFiles)
	group.Get("/keys", h.HandleKeys)
	group.Post("/", h.HandleCompare)
	group.Post("/inline", h.HandleCompareInline)
}

// HandleFiles lists the collections of the source.
// @Summary List Files
// @Description Lists the JSON files, bucket objects or tables offered by the configured source, in natural order.
// @Tags diff
// @Produce json
// @Success 200 {object} FilesResponse
// @Failure 404 {object} ErrorResponse "No input files"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /diff/files [get]
func (h *Handler) HandleFiles(c *fiber.Ctx) error {
	files, err := h.service.Files(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(FilesResponse{Source: h.service.Source().Kind(), Files: files})
}

// HandleKeys returns the keys of one collection.
// @Summary Collection Keys
// @Description Loads one collection and returns the keys shared by its records.
// @Tags diff
// @Produce json
// @Param file query string true "Collection name"
// @Success 200 {object} KeysResponse
// @Failure 400 {object} ErrorResponse "Missing file parameter"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 422 {object} ErrorResponse "Malformed collection"
// @Security ApiKeyAuth
// @Router /diff/keys [get]
func (h *Handler) HandleKeys(c *fiber.Ctx) error {
	file := c.Query("file")
	if file == "" {
		return h.fail(c, fmt.Errorf("%w: file is required", ErrInvalidRequest))
	}
	keys, err := h.service.Keys(c.Context(), file)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(KeysResponse{File: file, Keys: keys})
}

// HandleCompare compares two collections of the source.
// @Summary Compare Files
// @Description Compares two collections of the source matched on an identifier field.
// @Tags diff
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Files and identifier"
// @Success 200 {object} Report
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 422 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /diff [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Comparing files",
		zap.String("file_a", req.FileA),
		zap.String("file_b", req.FileB),
		zap.String("identifier", req.Identifier),
	)

	report, err := h.service.CompareFiles(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleCompareInline compares two arrays sent in the body.
// @Summary Compare Inline
// @Description Compares two arrays of objects given in the request body.
// @Tags diff
// @Accept json
// @Produce json
// @Param request body InlineRequest true "Arrays and identifier"
// @Success 200 {object} Report
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 422 {object} ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /diff/inline [post]
func (h *Handler) HandleCompareInline(c *fiber.Ctx) error {
	var req InlineRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	report, err := h.service.CompareInline(req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error("Diff request failed", zap.Error(err))
	} else {
		l.Warn("Diff request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, source.ErrNotFound), errors.Is(err, source.ErrNoInputFiles):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrMalformedJSON),
		errors.Is(err, reconcile.ErrMalformedStructure),
		errors.Is(err, reconcile.ErrSchemaMismatch),
		errors.Is(err, reconcile.ErrNotUnique),
		errors.Is(err, reconcile.ErrFieldAbsent),
		errors.Is(err, reconcile.ErrUnhashableIdentifier):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
