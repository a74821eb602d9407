package transport

import (
	"net/http"

	"store-admin/internal/domain"
	"store-admin/internal/middleware"
	"store-admin/internal/repository"
	"store-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes under a store
func (h *ProductHandler) RegisterRoutes(r chi.Router, authMiddleware, ownerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeID}/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{productID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(ownerMiddleware)
			r.Post("/", h.Create)
			r.Patch("/{productID}", h.Update)
			r.Delete("/{productID}", h.Delete)
		})
	})
}

// List returns non-archived products for the store, newest first. Optional
// query parameters categoryId, sizeId, colorId and isFeatured narrow the
// result; an absent parameter means no constraint on that field.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	filter, err := productFilterFromQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.productService.List(r.Context(), storeID, filter)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Get returns a single product with its images and referenced entities
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productID", "product id is required")
	if !ok {
		return
	}

	product, err := h.productService.Get(r.Context(), storeID, productID)
	if err != nil {
		h.respondError(w, err, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Create handles product creation. The product and its images are persisted
// atomically; a payload without images never reaches the database.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}

	input, ok := decodeInput[domain.ProductInput](w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.productService.Create(r.Context(), storeID, input)
	if err != nil {
		h.respondError(w, err, "failed to create product")
		return
	}

	h.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("store_id", storeID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Update handles full replacement of a product's editable fields and images
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productID", "product id is required")
	if !ok {
		return
	}

	input, ok := decodeInput[domain.ProductInput](w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.productService.Update(r.Context(), storeID, productID, input)
	if err != nil {
		h.respondError(w, err, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(w, r)
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productID", "product id is required")
	if !ok {
		return
	}

	product, err := h.productService.Delete(r.Context(), storeID, productID)
	if err != nil {
		h.respondError(w, err, "failed to delete product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case repository.ErrProductNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	case service.ErrProductBadReference:
		middleware.RespondWithError(w, http.StatusBadRequest, "referenced category, size or color does not exist")
	default:
		h.logger.Error("Product operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

// productFilterFromQuery builds a ProductFilter from query parameters.
// isFeatured follows the storefront convention: any non-empty value means
// "featured only", absence means no constraint.
func productFilterFromQuery(r *http.Request) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{}
	q := r.URL.Query()

	if raw := q.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidFilter("categoryId")
		}
		filter.CategoryID = &id
	}
	if raw := q.Get("sizeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidFilter("sizeId")
		}
		filter.SizeID = &id
	}
	if raw := q.Get("colorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidFilter("colorId")
		}
		filter.ColorID = &id
	}
	if raw := q.Get("isFeatured"); raw != "" {
		featured := true
		filter.IsFeatured = &featured
	}

	return filter, nil
}

type errInvalidFilter string

func (e errInvalidFilter) Error() string {
	return "invalid " + string(e) + " filter"
}
