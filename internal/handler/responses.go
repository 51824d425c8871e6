package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// client-safe message. Unrecognised errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrPredictionNotFound):
		return http.StatusNotFound, ErrMsgPredictionNotFound
	case errors.Is(err, domain.ErrPredictionAlreadyResolved):
		return http.StatusConflict, ErrMsgPredictionAlreadyResolved
	case errors.Is(err, domain.ErrPredictionNotExpired):
		return http.StatusConflict, ErrMsgPredictionNotExpired
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, ErrMsgPredictionNotResolvable
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a service failure and writes the mapped response.
// Field validation errors carry the offending field in the body.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)

	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "status", status, "reason", err.Error())
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, status, ValidationErrorResponse{
			Error:  message,
			Fields: map[string]string{verr.Field: verr.Message},
		})
		return
	}

	respondError(w, status, message)
}
