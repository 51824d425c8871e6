package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/callboard/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"field validation", domain.NewValidationError("stake", "must be between 1 and 1000"), http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"bare validation", domain.ErrValidation, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"not found", domain.ErrPredictionNotFound, http.StatusNotFound, ErrMsgPredictionNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", domain.ErrPredictionNotFound), http.StatusNotFound, ErrMsgPredictionNotFound},
		{"already resolved", domain.ErrPredictionAlreadyResolved, http.StatusConflict, ErrMsgPredictionAlreadyResolved},
		{"not expired", domain.ErrPredictionNotExpired, http.StatusConflict, ErrMsgPredictionNotExpired},
		{"generic invalid state", fmt.Errorf("%w: concurrent update", domain.ErrInvalidState), http.StatusConflict, ErrMsgPredictionNotResolvable},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("pq: relation \"predictions\" does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	t.Run("validation error lists field", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/predictions", nil)

		respondServiceError(w, r, OpCreatePrediction, domain.NewValidationError("title", "is required"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request","fields":{"title":"is required"}}`, w.Body.String())
	})

	t.Run("internal error is not echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)

		respondServiceError(w, r, OpGetLeaderboard, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
	})
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
}
