package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/logger"
	"github.com/osse101/callboard/internal/repository"
)

const predictionColumns = `id, title, category, stake, username, created_at, expires_at, status, outcome, resolved_at`

// PredictionRepository implements repository.Store for PostgreSQL
type PredictionRepository struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*PredictionRepository)(nil)

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// InsertPrediction stores p and sets its generated id
func (r *PredictionRepository) InsertPrediction(ctx context.Context, p *domain.Prediction) error {
	query := `
		INSERT INTO predictions (title, category, stake, username, created_at, expires_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		p.Title, p.Category, p.Stake, p.Username, p.CreatedAt, p.ExpiresAt, string(p.Status),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPrediction, err)
	}
	return nil
}

// GetPrediction loads one prediction by id
func (r *PredictionRepository) GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE id = $1`

	p, err := scanPrediction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrediction, err)
	}
	return p, nil
}

// ListPredictions returns predictions matching filter in creation order
func (r *PredictionRepository) ListPredictions(ctx context.Context, filter domain.PredictionFilter) ([]domain.Prediction, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + predictionColumns + ` FROM predictions WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Status != nil {
		fmt.Fprintf(&queryBuilder, " AND status = $%d", argNum)
		args = append(args, string(*filter.Status))
		argNum++
	}

	if filter.Username != nil {
		fmt.Fprintf(&queryBuilder, " AND username = $%d", argNum)
		args = append(args, *filter.Username)
	}

	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	defer rows.Close()

	predictions := make([]domain.Prediction, 0)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPrediction, err)
		}
		predictions = append(predictions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return predictions, nil
}

// ResolvePrediction performs the guarded open -> resolved transition in one
// UPDATE. Row-level locking makes concurrent resolves of one id re-check the
// WHERE clause, so only the first one matches.
func (r *PredictionRepository) ResolvePrediction(ctx context.Context, id int64, outcome domain.PredictionOutcome, resolvedAt time.Time) (*domain.Prediction, error) {
	query := `
		UPDATE predictions
		SET status = 'resolved', outcome = $2, resolved_at = $3
		WHERE id = $1 AND status = 'open' AND expires_at <= $3
		RETURNING ` + predictionColumns

	p, err := scanPrediction(r.db.QueryRow(ctx, query, id, string(outcome), resolvedAt))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolvePrediction, err)
	}

	return nil, r.explainResolveMiss(ctx, id, resolvedAt)
}

// explainResolveMiss re-reads the row to tell a missing id from a row whose
// state rejected the update
func (r *PredictionRepository) explainResolveMiss(ctx context.Context, id int64, resolvedAt time.Time) error {
	current, err := r.GetPrediction(ctx, id)
	if err != nil {
		return err
	}
	if err := current.CheckResolvable(resolvedAt); err != nil {
		return err
	}
	logger.FromContext(ctx).Warn(LogMsgResolveMissWithoutReason, "prediction_id", id)
	return fmt.Errorf("%w: concurrent update", domain.ErrInvalidState)
}

// Ping checks database connectivity
func (r *PredictionRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the connection pool
func (r *PredictionRepository) Close() {
	r.db.Close()
}

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	var (
		p          domain.Prediction
		status     string
		outcome    *string
		resolvedAt *time.Time
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Category, &p.Stake, &p.Username,
		&p.CreatedAt, &p.ExpiresAt, &status, &outcome, &resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = p.CreatedAt.UTC()
	p.ExpiresAt = p.ExpiresAt.UTC()
	p.Status = domain.PredictionStatus(status)
	if outcome != nil {
		o := domain.PredictionOutcome(*outcome)
		p.Outcome = &o
	}
	if resolvedAt != nil {
		t := resolvedAt.UTC()
		p.ResolvedAt = &t
	}
	return &p, nil
}
