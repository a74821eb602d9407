package transport

import (
	"net/http"

	"store-admin/internal/domain"
	"store-admin/internal/middleware"
	"store-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreHandler handles HTTP requests for the store setup flow
type StoreHandler struct {
	storeService service.StoreService
	logger       *zap.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService service.StoreService, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		logger:       logger,
	}
}

// RegisterRoutes registers store routes. Both require authentication; there
// is no ownership middleware here because the store itself is what is being
// created or enumerated.
func (h *StoreHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/stores", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/", h.ListMine)
	})
}

// Create handles store creation from the first-run setup prompt
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r, h.logger)
	if !ok {
		return
	}

	input, ok := decodeInput[domain.StoreInput](w, r, h.logger)
	if !ok {
		return
	}

	store, err := h.storeService.Create(r.Context(), userID, input)
	if err != nil {
		h.logger.Error("Store creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create store")
		return
	}

	h.logger.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("user_id", userID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, store)
}

// ListMine returns the caller's stores, newest first
func (h *StoreHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r, h.logger)
	if !ok {
		return
	}

	stores, err := h.storeService.ListMine(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list stores", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list stores")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stores)
}

// callerID extracts the authenticated user's id from the request context
func callerID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uuid.UUID, bool) {
	userIDStr, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		logger.Error("Invalid user ID in context", zap.Error(err))
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}

	return userID, true
}
