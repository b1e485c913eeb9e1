package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/retail-banking/internal/domain"
	"github.com/api-sage/retail-banking/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the domain error taxonomy onto HTTP statuses. The
// core itself knows nothing about HTTP.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateCustomer),
		errors.Is(err, domain.ErrDuplicateAccountType),
		errors.Is(err, domain.ErrAccountNotEmpty),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, domain.ErrIneligibleForAccountType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func logRequest(r *http.Request, payload any) {
	logger.Info("http request", logger.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"payload": logger.SanitizePayload(payload),
	})
}

func logError(r *http.Request, err error) {
	logger.Error("http handler error", err, logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}
