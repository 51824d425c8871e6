package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/osse101/callboard/internal/database"
	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/logger"
	"github.com/osse101/callboard/internal/repository"
)

// timeLayout is fixed width so text comparison in SQL is chronological
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const predictionColumns = `id, title, category, stake, username, created_at, expires_at, status, outcome, resolved_at`

// PredictionRepository implements repository.Store on a SQLite file
type PredictionRepository struct {
	db *sql.DB
}

var _ repository.Store = (*PredictionRepository)(nil)

// Open opens (creating if needed) the SQLite file at path and applies migrations
func Open(ctx context.Context, path string) (*PredictionRepository, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on", path, BusyTimeoutMillis)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	// one writer at a time; concurrent resolves queue behind the busy timeout
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	if err := database.Migrate(ctx, db, database.DriverSQLite); err != nil {
		db.Close()
		return nil, err
	}

	slog.Default().Info(database.LogMsgConnectedToDatabase, "driver", database.DriverSQLite, "path", path)
	return &PredictionRepository{db: db}, nil
}

// InsertPrediction stores p and sets its generated id
func (r *PredictionRepository) InsertPrediction(ctx context.Context, p *domain.Prediction) error {
	query := `
		INSERT INTO predictions (title, category, stake, username, created_at, expires_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		p.Title, nullString(p.Category), p.Stake, p.Username,
		formatTime(p.CreatedAt), formatTime(p.ExpiresAt), string(p.Status),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPrediction, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPrediction, err)
	}
	p.ID = id
	return nil
}

// GetPrediction loads one prediction by id
func (r *PredictionRepository) GetPrediction(ctx context.Context, id int64) (*domain.Prediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE id = ?`

	p, err := scanPrediction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

	var args []interface{}
	if filter.Status != nil {
		queryBuilder.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Username != nil {
		queryBuilder.WriteString(" AND username = ?")
		args = append(args, *filter.Username)
	}
	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	defer rows.Close()

	predictions := make([]domain.Prediction, 0)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
		}
		predictions = append(predictions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return predictions, nil
}

// ResolvePrediction performs the guarded open -> resolved transition with a
// single conditional UPDATE
func (r *PredictionRepository) ResolvePrediction(ctx context.Context, id int64, outcome domain.PredictionOutcome, resolvedAt time.Time) (*domain.Prediction, error) {
	at := formatTime(resolvedAt)
	query := `
		UPDATE predictions
		SET status = 'resolved', outcome = ?, resolved_at = ?
		WHERE id = ? AND status = 'open' AND expires_at <= ?`

	res, err := r.db.ExecContext(ctx, query, string(outcome), at, id, at)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolvePrediction, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolvePrediction, err)
	}

	current, err := r.GetPrediction(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 1 {
		return current, nil
	}

	if err := current.CheckResolvable(resolvedAt); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Warn(LogMsgResolveMissWithoutReason, "prediction_id", id)
	return nil, fmt.Errorf("%w: concurrent update", domain.ErrInvalidState)
}

// Ping checks that the database file is reachable
func (r *PredictionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database handle
func (r *PredictionRepository) Close() {
	if err := r.db.Close(); err != nil {
		slog.Default().Error(ErrMsgFailedToClose, "error", err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrediction(row rowScanner) (*domain.Prediction, error) {
	var (
		p          domain.Prediction
		category   sql.NullString
		createdAt  string
		expiresAt  string
		status     string
		outcome    sql.NullString
		resolvedAt sql.NullString
	)

	err := row.Scan(&p.ID, &p.Title, &category, &p.Stake, &p.Username,
		&createdAt, &expiresAt, &status, &outcome, &resolvedAt)
	if err != nil {
		return nil, err
	}

	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, err
	}
	p.Status = domain.PredictionStatus(status)
	if category.Valid {
		v := category.String
		p.Category = &v
	}
	if outcome.Valid {
		o := domain.PredictionOutcome(outcome.String)
		p.Outcome = &o
	}
	if resolvedAt.Valid {
		t, err := parseTime(resolvedAt.String)
		if err != nil {
			return nil, err
		}
		p.ResolvedAt = &t
	}
	return &p, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", ErrMsgBadTimestamp, s, err)
	}
	return t.UTC(), nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
