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

// SizeHandler handles HTTP requests for size operations
type SizeHandler struct {
	sizeService service.SizeService
	logger      *zap.Logger
}

// NewSizeHandler creates a new SizeHandler
func NewSizeHandler(sizeService service.SizeService, logger *zap.Logger) *SizeHandler {
	return &SizeHandler{
		sizeService: sizeService,
		logger:      logger,
	}
}

// RegisterRoutes registers all size routes under a store
func (h *SizeHandler) RegisterRoutes(r chi.Router, authMiddleware, ownerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeID}/sizes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{sizeID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(ownerMiddleware)
			r.Post("/", h.Create)
			r.Patch("/{sizeID}", h.Update)
			r.Delete("/{sizeID}", h.Delete)
		})
	})
}

// List returns all sizes for the store, newest first
func (h *SizeHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	sizes, err := h.sizeService.List(r.Context(), storeID)
	if err != nil {
		h.logger.Error("Failed to list sizes", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list sizes")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, sizes)
}

// Get returns a single size
func (h *SizeHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	sizeID, ok := uuidParam(w, r, "sizeID", "size id is required")
	if !ok {
		return
	}

	size, err := h.sizeService.Get(r.Context(), storeID, sizeID)
	if err != nil {
		h.respondError(w, err, "failed to get size")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, size)
}

// Create handles size creation
func (h *SizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	input, ok := decodeInput[domain.SizeInput](w, r, h.logger)
	if !ok {
		return
	}

	size, err := h.sizeService.Create(r.Context(), storeID, input)
	if err != nil {
		h.respondError(w, err, "failed to create size")
		return
	}

	h.logger.Info("Size created",
		zap.String("size_id", size.ID.String()),
		zap.String("store_id", storeID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, size)
}

// Update handles full replacement of a size's editable fields
func (h *SizeHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	sizeID, ok := uuidParam(w, r, "sizeID", "size id is required")
	if !ok {
		return
	}

	input, ok := decodeInput[domain.SizeInput](w, r, h.logger)
	if !ok {
		return
	}

	size, err := h.sizeService.Update(r.Context(), storeID, sizeID, input)
	if err != nil {
		h.respondError(w, err, "failed to update size")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, size)
}

// Delete handles size deletion; blocked while products reference it
func (h *SizeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	sizeID, ok := uuidParam(w, r, "sizeID", "size id is required")
	if !ok {
		return
	}

	size, err := h.sizeService.Delete(r.Context(), storeID, sizeID)
	if err != nil {
		h.respondError(w, err, "failed to delete size")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, size)
}

func (h *SizeHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case repository.ErrSizeNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "size not found")
	case repository.ErrSizeInUse:
		middleware.RespondWithError(w, http.StatusConflict, "make sure you removed all products using this size first")
	default:
		h.logger.Error("Size operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
