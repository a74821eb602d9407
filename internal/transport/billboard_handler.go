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

// BillboardHandler handles HTTP requests for billboard operations
type BillboardHandler struct {
	billboardService service.BillboardService
	logger           *zap.Logger
}

// NewBillboardHandler creates a new BillboardHandler
func NewBillboardHandler(billboardService service.BillboardService, logger *zap.Logger) *BillboardHandler {
	return &BillboardHandler{
		billboardService: billboardService,
		logger:           logger,
	}
}

// RegisterRoutes registers all billboard routes under a store
func (h *BillboardHandler) RegisterRoutes(r chi.Router, authMiddleware, ownerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeID}/billboards", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{billboardID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(ownerMiddleware)
			r.Post("/", h.Create)
			r.Patch("/{billboardID}", h.Update)
			r.Delete("/{billboardID}", h.Delete)
		})
	})
}

// List returns all billboards for the store, newest first
func (h *BillboardHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	billboards, err := h.billboardService.List(r.Context(), storeID)
	if err != nil {
		h.logger.Error("Failed to list billboards", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list billboards")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, billboards)
}

// Get returns a single billboard
func (h *BillboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	billboardID, ok := uuidParam(w, r, "billboardID", "billboard id is required")
	if !ok {
		return
	}

	billboard, err := h.billboardService.Get(r.Context(), storeID, billboardID)
	if err != nil {
		h.respondError(w, err, "failed to get billboard")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, billboard)
}

// Create handles billboard creation
func (h *BillboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	input, ok := decodeInput[domain.BillboardInput](w, r, h.logger)
	if !ok {
		return
	}

	billboard, err := h.billboardService.Create(r.Context(), storeID, input)
	if err != nil {
		h.respondError(w, err, "failed to create billboard")
		return
	}

	h.logger.Info("Billboard created",
		zap.String("billboard_id", billboard.ID.String()),
		zap.String("store_id", storeID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, billboard)
}

// Update handles full replacement of a billboard's editable fields
func (h *BillboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	billboardID, ok := uuidParam(w, r, "billboardID", "billboard id is required")
	if !ok {
		return
	}

	input, ok := decodeInput[domain.BillboardInput](w, r, h.logger)
	if !ok {
		return
	}

	billboard, err := h.billboardService.Update(r.Context(), storeID, billboardID, input)
	if err != nil {
		h.respondError(w, err, "failed to update billboard")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, billboard)
}

// Delete handles billboard deletion; blocked while categories reference it
func (h *BillboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	billboardID, ok := uuidParam(w, r, "billboardID", "billboard id is required")
	if !ok {
		return
	}

	billboard, err := h.billboardService.Delete(r.Context(), storeID, billboardID)
	if err != nil {
		h.respondError(w, err, "failed to delete billboard")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, billboard)
}

func (h *BillboardHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case repository.ErrBillboardNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "billboard not found")
	case repository.ErrBillboardInUse:
		middleware.RespondWithError(w, http.StatusConflict, "make sure you removed all categories using this billboard first")
	default:
		h.logger.Error("Billboard operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
