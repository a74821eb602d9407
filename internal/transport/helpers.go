package transport

import (
	"net/http"

	"store-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// storeIDParam parses the {storeID} URL parameter. A missing or malformed id
// is a bad request; the write paths additionally pass through the ownership
// middleware before reaching any handler.
func storeIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return uuidParam(w, r, "storeID", "store id is required")
}

func uuidParam(w http.ResponseWriter, r *http.Request, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, message)
		return uuid.Nil, false
	}
	return id, true
}

// decodeInput decodes and validates a JSON payload. Validation failures are
// answered with a 400 naming each offending field; the handler is done when
// ok is false.
func decodeInput[T any](w http.ResponseWriter, r *http.Request, logger *zap.Logger) (T, bool) {
	var input T

	if err := middleware.DecodeAndValidate(r, &input); err != nil {
		logger.Debug("Payload validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return input, false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return input, false
	}

	return input, true
}
