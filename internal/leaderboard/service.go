package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/logger"
	"github.com/osse101/callboard/internal/metrics"
	"github.com/osse101/callboard/internal/repository"
)

// Service defines the interface for leaderboard queries
type Service interface {
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo repository.Prediction
}

// NewService creates a new leaderboard service
func NewService(repo repository.Prediction) Service {
	return &service{repo: repo}
}

// GetLeaderboard recomputes the ranking from every resolved prediction
func (s *service) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	resolved := domain.PredictionStatusResolved
	predictions, err := s.repo.ListPredictions(ctx, domain.PredictionFilter{Status: &resolved})
	if err != nil {
		log.Error(LogMsgFailedToGetLeaderboard, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgGetLeaderboardFailed, err)
	}

	start := time.Now()
	entries := Compute(predictions)
	metrics.LeaderboardDuration.Observe(time.Since(start).Seconds())
	metrics.LeaderboardComputations.Inc()

	log.Debug(LogMsgComputedLeaderboard, "predictions", len(predictions), "entries", len(entries))
	return entries, nil
}
