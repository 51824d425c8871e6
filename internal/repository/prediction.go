package repository

import (
	"context"
	"time"

	"github.com/osse101/callboard/internal/domain"
)

// Prediction defines the storage contract shared by every backend.
//
// ResolvePrediction must be a single atomic conditional update: it succeeds
// only when the row is open and resolvedAt is not before expires_at. On
// failure it returns domain.ErrPredictionNotFound, or an error wrapping
// domain.ErrInvalidState (ErrPredictionAlreadyResolved or
// ErrPredictionNotExpired). Concurrent calls for one id produce at most one
// success.
type Prediction interface {
	InsertPrediction(ctx context.Context, p *domain.Prediction) error
	GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error)
	// ListPredictions orders by created_at ascending, then id ascending
	ListPredictions(ctx context.Context, filter domain.PredictionFilter) ([]domain.Prediction, error)
	ResolvePrediction(ctx context.Context, id int64, outcome domain.PredictionOutcome, resolvedAt time.Time) (*domain.Prediction, error)
}

// Store is a Prediction repository that owns a connection lifecycle
type Store interface {
	Prediction
	Ping(ctx context.Context) error
	Close()
}
