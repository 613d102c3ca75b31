package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/martin00001313/TransactionProcessing/internal/adapter/http/dto"
	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps drop reasons to HTTP status codes. Every drop is
// a normal business outcome, so nothing here maps to a 5xx.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownTransaction):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return http.StatusConflict
	case errors.Is(err, domain.ErrClientMismatch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownEventType),
		errors.Is(err, domain.ErrMalformedRecord),
		errors.Is(err, domain.ErrMissingAmount),
		errors.Is(err, domain.ErrUnexpectedAmount),
		errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
