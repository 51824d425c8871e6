package prediction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/callboard/internal/clock"
	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/logger"
	"github.com/osse101/callboard/internal/metrics"
	"github.com/osse101/callboard/internal/repository"
)

// Service defines the interface for prediction lifecycle operations
type Service interface {
	CreatePrediction(ctx context.Context, input domain.CreatePredictionInput) (*domain.Prediction, error)
	// ListPredictions filters by status and username; empty strings disable a filter
	ListPredictions(ctx context.Context, status, username string) ([]domain.Prediction, error)
	GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error)
	ResolvePrediction(ctx context.Context, id int64, outcome string) (*domain.Prediction, error)
}

// StakeLimits bounds the stake a prediction may carry, inclusive
type StakeLimits struct {
	Min int
	Max int
}

// DefaultStakeLimits matches the documented configuration defaults
var DefaultStakeLimits = StakeLimits{Min: 1, Max: 1000}

type service struct {
	repo   repository.Prediction
	clock  clock.Clock
	limits StakeLimits
}

// NewService creates a new prediction service
func NewService(repo repository.Prediction, clk clock.Clock, limits StakeLimits) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{
		repo:   repo,
		clock:  clk,
		limits: limits,
	}
}

// now is truncated to microseconds so every backend stores the same instant
func (s *service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// CreatePrediction validates the input and stores a new open prediction
func (s *service) CreatePrediction(ctx context.Context, input domain.CreatePredictionInput) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	p, err := s.buildPrediction(input, now)
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertPrediction(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePrediction, err)
	}

	metrics.PredictionsCreated.Inc()
	log.Info(LogMsgPredictionCreated, "id", p.ID, "username", p.Username, "stake", p.Stake)

	return p, nil
}

func (s *service) buildPrediction(input domain.CreatePredictionInput, now time.Time) (*domain.Prediction, error) {
	title := normalize(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", MsgRequired)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, domain.NewValidationError("title", fmt.Sprintf(MsgTooLong, MaxTitleLength))
	}

	var category *string
	if input.Category != nil {
		if c := normalize(*input.Category); c != "" {
			if utf8.RuneCountInString(c) > MaxCategoryLength {
				return nil, domain.NewValidationError("category", fmt.Sprintf(MsgTooLong, MaxCategoryLength))
			}
			category = &c
		}
	}

	username := normalize(input.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", MsgRequired)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, domain.NewValidationError("username", fmt.Sprintf(MsgTooLong, MaxUsernameLength))
	}

	stake := DefaultStake
	if input.Stake != nil {
		stake = *input.Stake
	}
	if stake < s.limits.Min || stake > s.limits.Max {
		return nil, domain.NewValidationError("stake", fmt.Sprintf(MsgStakeOutOfRange, s.limits.Min, s.limits.Max))
	}

	expiresAt := input.ExpiresAt.UTC().Truncate(time.Microsecond)
	if !expiresAt.After(now) {
		return nil, domain.NewValidationError("expires_at", MsgExpiresNotFuture)
	}
	if expiresAt.Year() > MaxExpiresYear {
		return nil, domain.NewValidationError("expires_at", fmt.Sprintf(MsgExpiresTooFar, MaxExpiresYear+1))
	}

	return &domain.Prediction{
		Title:     title,
		Category:  category,
		Stake:     stake,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: expiresAt,
		Status:    domain.PredictionStatusOpen,
	}, nil
}

// ListPredictions returns matching predictions ordered by creation time then id
func (s *service) ListPredictions(ctx context.Context, status, username string) ([]domain.Prediction, error) {
	var filter domain.PredictionFilter

	if strings.TrimSpace(status) != "" {
		st, err := domain.ParsePredictionStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}

	if u := normalize(username); u != "" {
		filter.Username = &u
	}

	predictions, err := s.repo.ListPredictions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	if predictions == nil {
		predictions = []domain.Prediction{}
	}
	return predictions, nil
}

// GetPrediction retrieves a single prediction by id
func (s *service) GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error) {
	if id <= 0 {
		return nil, domain.ErrPredictionNotFound
	}

	p, err := s.repo.GetPrediction(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPredictionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrediction, err)
	}
	return p, nil
}

// ResolvePrediction records the outcome of an open, expired prediction.
// The outcome is validated before storage is touched.
func (s *service) ResolvePrediction(ctx context.Context, id int64, outcome string) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	o, err := domain.ParsePredictionOutcome(outcome)
	if err != nil {
		metrics.ResolveRejected.WithLabelValues(metrics.ReasonInvalidOutcome).Inc()
		return nil, err
	}

	if id <= 0 {
		metrics.ResolveRejected.WithLabelValues(metrics.ReasonNotFound).Inc()
		return nil, domain.ErrPredictionNotFound
	}

	p, err := s.repo.ResolvePrediction(ctx, id, o, s.now())
	if err != nil {
		if reason, ok := rejectReason(err); ok {
			metrics.ResolveRejected.WithLabelValues(reason).Inc()
			log.Debug(LogMsgResolveRejected, "id", id, "reason", reason)
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolvePrediction, err)
	}

	metrics.PredictionsResolved.WithLabelValues(string(o)).Inc()
	log.Info(LogMsgPredictionResolved, "id", p.ID, "username", p.Username, "outcome", o)

	return p, nil
}

func rejectReason(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrPredictionNotFound):
		return metrics.ReasonNotFound, true
	case errors.Is(err, domain.ErrPredictionNotExpired):
		return metrics.ReasonNotExpired, true
	case errors.Is(err, domain.ErrInvalidState):
		return metrics.ReasonAlreadyResolved, true
	}
	return "", false
}

// normalize trims surrounding whitespace and applies Unicode NFC
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
