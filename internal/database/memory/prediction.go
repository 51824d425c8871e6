package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/callboard/internal/concurrency"
	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/repository"
)

// PredictionStore keeps predictions in process memory. Data does not survive
// a restart.
type PredictionStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Prediction

	// resolveLocks serializes the check-then-write of a resolve per id
	resolveLocks *concurrency.LockManager
}

var _ repository.Store = (*PredictionStore)(nil)

// NewPredictionStore creates an empty in-memory store
func NewPredictionStore() *PredictionStore {
	return &PredictionStore{
		byID:         make(map[int64]*domain.Prediction),
		resolveLocks: concurrency.NewLockManager(),
	}
}

// InsertPrediction assigns the next id and stores a copy of p
func (s *PredictionStore) InsertPrediction(ctx context.Context, p *domain.Prediction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	p.ID = s.nextID
	s.byID[p.ID] = p.Clone()
	return nil
}

// GetPrediction returns a copy of the stored prediction
func (s *PredictionStore) GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrPredictionNotFound
	}
	return p.Clone(), nil
}

// ListPredictions returns copies of every prediction matching filter
func (s *PredictionStore) ListPredictions(ctx context.Context, filter domain.PredictionFilter) ([]domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	result := make([]domain.Prediction, 0, len(s.byID))
	for _, p := range s.byID {
		if filter.Matches(p) {
			result = append(result, *p.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ResolvePrediction resolves an open, expired prediction
func (s *PredictionStore) ResolvePrediction(ctx context.Context, id int64, outcome domain.PredictionOutcome, resolvedAt time.Time) (*domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Unknown ids must not allocate a lock; ids are never deleted, so the
	// lock set stays bounded by the number of stored predictions.
	if !s.exists(id) {
		return nil, domain.ErrPredictionNotFound
	}

	lock := s.resolveLocks.GetIDLock(id)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.GetPrediction(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := current.CheckResolvable(resolvedAt); err != nil {
		return nil, err
	}

	current.Resolve(outcome, resolvedAt)

	s.mu.Lock()
	s.byID[id] = current.Clone()
	s.mu.Unlock()

	return current, nil
}

func (s *PredictionStore) exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

// Ping always succeeds for the in-memory store
func (s *PredictionStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *PredictionStore) Close() {}
