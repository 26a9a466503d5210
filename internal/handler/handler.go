package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"tillpoint/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a core error onto an HTTP status and response body.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var dupErr *model.DuplicateNameError
	var stockErr *model.InsufficientStockError
	var domErr *model.DomainError

	switch {
	case errors.As(err, &dupErr):
		writeError(w, http.StatusConflict, dupErr.Code(), dupErr.Error(), logger)

	case errors.As(err, &stockErr):
		available := stockErr.Available
		logger.Warn().
			Str("product", stockErr.Name).
			Int("available", available).
			Msg("insufficient stock")
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error:     stockErr.Code(),
			Message:   stockErr.Error(),
			Available: &available,
		})

	case errors.As(err, &domErr):
		switch domErr.Code {
		case model.ErrCodeProductNotFound:
			writeError(w, http.StatusNotFound, domErr.Code, domErr.Message, logger)
		case model.ErrCodeEmptyCart:
			writeError(w, http.StatusUnprocessableEntity, domErr.Code, domErr.Message, logger)
		case model.ErrCodeInvalidInput:
			writeError(w, http.StatusBadRequest, domErr.Code, domErr.Message, logger)
		default:
			writeError(w, http.StatusInternalServerError, domErr.Code, domErr.Message, logger)
		}

	default:
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal error", logger)
	}
}
