package prediction

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/callboard/internal/domain"
)

// MockRepository is a testify mock of repository.Prediction
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) InsertPrediction(ctx context.Context, p *domain.Prediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockRepository) ListPredictions(ctx context.Context, filter domain.PredictionFilter) ([]domain.Prediction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockRepository) ResolvePrediction(ctx context.Context, id int64, outcome domain.PredictionOutcome, resolvedAt time.Time) (*domain.Prediction, error) {
	args := m.Called(ctx, id, outcome, resolvedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}
