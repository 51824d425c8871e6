package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/callboard/internal/domain"
)

// MockLeaderboardService is a testify mock of leaderboard.Service
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("ranked entries", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		svc.On("GetLeaderboard", mock.Anything).Return([]domain.LeaderboardEntry{
			{Username: "alice", TotalPoints: 50, PredictionsCount: 1},
			{Username: "bob", TotalPoints: -10, PredictionsCount: 1},
		}, nil).Once()

		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"username":"alice","total_points":50,"predictions_count":1},
			{"username":"bob","total_points":-10,"predictions_count":1}
		]`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("empty", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		svc.On("GetLeaderboard", mock.Anything).Return([]domain.LeaderboardEntry{}, nil).Once()

		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("storage failure is a generic 500", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		svc.On("GetLeaderboard", mock.Anything).Return(nil, errors.New("sql: database is closed")).Once()

		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
	})
}
