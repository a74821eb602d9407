package transport

import (
	"net/http"

	"store-admin/internal/domain"
	"store-admin/internal/middleware"
	"store-admin/internal/repository"
	"store-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ColorHandler handles HTTP requests for color operations
type ColorHandler struct {
	colorService service.ColorService
	logger       *zap.Logger
}

// NewColorHandler creates a new ColorHandler
func NewColorHandler(colorService service.ColorService, logger *zap.Logger) *ColorHandler {
	return &ColorHandler{
		colorService: colorService,
		logger:       logger,
	}
}

// RegisterRoutes registers all color routes under a store
func (h *ColorHandler) RegisterRoutes(r chi.Router, authMiddleware, ownerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeID}/colors", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{colorID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(ownerMiddleware)
			r.Post("/", h.Create)
			r.Patch("/{colorID}", h.Update)
			r.Delete("/{colorID}", h.Delete)
		})
	})
}

// List returns all colors for the store, newest first
func (h *ColorHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	colors, err := h.colorService.List(r.Context(), storeID)
	if err != nil {
		h.logger.Error("Failed to list colors", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list colors")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, colors)
}

// Get returns a single color
func (h *ColorHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	colorID, ok := uuidParam(w, r, "colorID", "color id is required")
	if !ok {
		return
	}

	color, err := h.colorService.Get(r.Context(), storeID, colorID)
	if err != nil {
		h.respondError(w, err, "failed to get color")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, color)
}

// Create handles color creation
func (h *ColorHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	input, ok := decodeInput[domain.ColorInput](w, r, h.logger)
	if !ok {
		return
	}

	color, err := h.colorService.Create(r.Context(), storeID, input)
	if err != nil {
		h.respondError(w, err, "failed to create color")
		return
	}

	h.logger.Info("Color created",
		zap.String("color_id", color.ID.String()),
		zap.String("store_id", storeID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, color)
}

// Update handles full replacement of a color's editable fields
func (h *ColorHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	colorID, ok := uuidParam(w, r, "colorID", "color id is required")
	if !ok {
		return
	}

	input, ok := decodeInput[domain.ColorInput](w, r, h.logger)
	if !ok {
		return
	}

	color, err := h.colorService.Update(r.Context(), storeID, colorID, input)
	if err != nil {
		h.respondError(w, err, "failed to update color")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, color)
}

// Delete handles color deletion; blocked while products reference it
func (h *ColorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	colorID, ok := uuidParam(w, r, "colorID", "color id is required")
	if !ok {
		return
	}

	color, err := h.colorService.Delete(r.Context(), storeID, colorID)
	if err != nil {
		h.respondError(w, err, "failed to delete color")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, color)
}

func (h *ColorHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case repository.ErrColorNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "color not found")
	case repository.ErrColorInUse:
		middleware.RespondWithError(w, http.StatusConflict, "make sure you removed all products using this color first")
	default:
		h.logger.Error("Color operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
