package middleware

import (
	"context"
	"net/http"

	"store-admin/internal/domain"
	"store-admin/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const StoreKey contextKey = "store"

// RequireStoreOwner verifies that the authenticated user owns the store named
// in the {storeID} URL parameter. It runs after AuthMiddleware and before the
// handler decodes the payload, so a non-owner learns nothing about the
// entity's field requirements. The resolved store is placed in the request
// context.
func RequireStoreOwner(storeRepo repository.StoreRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr, ok := GetUserID(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				logger.Error("Invalid user ID in context", zap.Error(err))
				respondWithError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			storeIDParam := chi.URLParam(r, "storeID")
			storeID, err := uuid.Parse(storeIDParam)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "store id is required")
				return
			}

			store, err := storeRepo.FindByIDAndUser(r.Context(), storeID, userID)
			if err != nil {
				if err == repository.ErrStoreNotFound {
					logger.Debug("Store ownership check failed",
						zap.String("store_id", storeID.String()),
						zap.String("user_id", userID.String()),
					)
					respondWithError(w, http.StatusForbidden, "unauthorized for this store")
					return
				}
				logger.Error("Store ownership check errored", zap.Error(err))
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), StoreKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetStore extracts the ownership-checked store from the request context
func GetStore(ctx context.Context) (*domain.Store, bool) {
	store, ok := ctx.Value(StoreKey).(*domain.Store)
	return store, ok
}
