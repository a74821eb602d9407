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

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes under a store. Reads are
// public; writes run behind authentication and the store ownership check.
func (h *CategoryHandler) RegisterRoutes(r chi.Router, authMiddleware, ownerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeID}/categories", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{categoryID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(ownerMiddleware)
			r.Post("/", h.Create)
			r.Patch("/{categoryID}", h.Update)
			r.Delete("/{categoryID}", h.Delete)
		})
	})
}

// List returns all categories for the store, newest first
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	categories, err := h.categoryService.List(r.Context(), storeID)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// Get returns a single category
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	categoryID, ok := uuidParam(w, r, "categoryID", "category id is required")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(r.Context(), storeID, categoryID)
	if err != nil {
		h.respondError(w, err, "failed to get category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// Create handles category creation
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	input, ok := decodeInput[domain.CategoryInput](w, r, h.logger)
	if !ok {
		return
	}

	category, err := h.categoryService.Create(r.Context(), storeID, input)
	if err != nil {
		h.respondError(w, err, "failed to create category")
		return
	}

	h.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("store_id", storeID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// Update handles full replacement of a category's editable fields
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	categoryID, ok := uuidParam(w, r, "categoryID", "category id is required")
	if !ok {
		return
	}

	input, ok := decodeInput[domain.CategoryInput](w, r, h.logger)
	if !ok {
		return
	}

	category, err := h.categoryService.Update(r.Context(), storeID, categoryID, input)
	if err != nil {
		h.respondError(w, err, "failed to update category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// Delete handles category deletion; blocked while products reference it
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	categoryID, ok := uuidParam(w, r, "categoryID", "category id is required")
	if !ok {
		return
	}

	category, err := h.categoryService.Delete(r.Context(), storeID, categoryID)
	if err != nil {
		h.respondError(w, err, "failed to delete category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case repository.ErrCategoryNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "category not found")
	case repository.ErrCategoryInUse:
		middleware.RespondWithError(w, http.StatusConflict, "make sure you removed all products using this category first")
	case service.ErrBillboardNotInStore:
		middleware.RespondWithError(w, http.StatusBadRequest, "billboard does not exist in this store")
	default:
		h.logger.Error("Category operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
