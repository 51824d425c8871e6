package handler

import (
	"net/http"

	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/logger"
	"github.com/osse101/callboard/internal/prediction"
)

// PredictionHandler serves the prediction lifecycle endpoints
type PredictionHandler struct {
	service prediction.Service
}

// NewPredictionHandler creates a new PredictionHandler
func NewPredictionHandler(service prediction.Service) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// CreatePredictionRequest is the body of POST /predictions
type CreatePredictionRequest struct {
	Title     string  `json:"title" validate:"notblank,max=200"`
	Category  *string `json:"category" validate:"omitempty,max=50"`
	Stake     *int    `json:"stake"`
	ExpiresAt string  `json:"expires_at" validate:"notblank"`
	Username  string  `json:"username" validate:"notblank,max=50"`
}

// ResolvePredictionRequest is the body of POST /predictions/{id}/resolve
type ResolvePredictionRequest struct {
	Outcome string `json:"outcome" validate:"notblank"`
}

// HandleCreate creates a new open prediction
// @Summary Create prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body CreatePredictionRequest true "Prediction"
// @Success 201 {object} domain.Prediction
// @Failure 400 {object} ValidationErrorResponse
// @Router /predictions [post]
func (h *PredictionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreatePredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreatePrediction); err != nil {
		return
	}

	expiresAt, err := parseTimestamp(req.ExpiresAt)
	if err != nil {
		log.Warn("Invalid expires_at", "value", req.ExpiresAt)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{"expires_at": ErrMsgInvalidTimestamp},
		})
		return
	}

	p, err := h.service.CreatePrediction(r.Context(), domain.CreatePredictionInput{
		Title:     req.Title,
		Category:  req.Category,
		Stake:     req.Stake,
		ExpiresAt: expiresAt,
		Username:  req.Username,
	})
	if err != nil {
		respondServiceError(w, r, OpCreatePrediction, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// HandleList lists predictions, optionally filtered by status and username
// @Summary List predictions
// @Tags predictions
// @Produce json
// @Param status query string false "open or resolved"
// @Param username query string false "Owner username"
// @Success 200 {array} domain.Prediction
// @Failure 400 {object} ValidationErrorResponse
// @Router /predictions [get]
func (h *PredictionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := GetOptionalQueryParam(r, "status", "")
	username := GetOptionalQueryParam(r, "username", "")

	predictions, err := h.service.ListPredictions(r.Context(), status, username)
	if err != nil {
		respondServiceError(w, r, OpListPredictions, err)
		return
	}

	respondJSON(w, http.StatusOK, predictions)
}

// HandleGet returns a single prediction
// @Summary Get prediction
// @Tags predictions
// @Produce json
// @Param id path int true "Prediction ID"
// @Success 200 {object} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /predictions/{id} [get]
func (h *PredictionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPredictionID(w, r)
	if !ok {
		return
	}

	p, err := h.service.GetPrediction(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetPrediction, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleResolve records the outcome of an expired prediction
// @Summary Resolve prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Param id path int true "Prediction ID"
// @Param request body ResolvePredictionRequest true "Outcome"
// @Success 200 {object} domain.Prediction
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /predictions/{id}/resolve [post]
func (h *PredictionHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPredictionID(w, r)
	if !ok {
		return
	}

	var req ResolvePredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpResolvePrediction); err != nil {
		return
	}

	p, err := h.service.ResolvePrediction(r.Context(), id, req.Outcome)
	if err != nil {
		respondServiceError(w, r, OpResolvePrediction, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}
