package domain

import "time"

// PredictionStatus is the lifecycle state of a prediction
type PredictionStatus string

const (
	PredictionStatusOpen     PredictionStatus = "open"
	PredictionStatusResolved PredictionStatus = "resolved"
)

// Valid reports whether s is a known status
func (s PredictionStatus) Valid() bool {
	return s == PredictionStatusOpen || s == PredictionStatusResolved
}

// PredictionOutcome is the result recorded when a prediction is resolved
type PredictionOutcome string

const (
	OutcomeSuccess PredictionOutcome = "success"
	OutcomeFail    PredictionOutcome = "fail"
)

// Valid reports whether o is a known outcome
func (o PredictionOutcome) Valid() bool {
	return o == OutcomeSuccess || o == OutcomeFail
}

// Sign returns +1 for success and -1 for fail
func (o PredictionOutcome) Sign() int {
	if o == OutcomeSuccess {
		return 1
	}
	return -1
}

// ParsePredictionStatus converts a raw filter value into a status.
// Matching is exact: "Resolved" or " open" are rejected.
func ParsePredictionStatus(raw string) (PredictionStatus, error) {
	s := PredictionStatus(raw)
	if !s.Valid() {
		return "", NewValidationError("status", "must be one of: open, resolved")
	}
	return s, nil
}

// ParsePredictionOutcome converts a raw request value into an outcome
func ParsePredictionOutcome(raw string) (PredictionOutcome, error) {
	o := PredictionOutcome(raw)
	if !o.Valid() {
		return "", NewValidationError("outcome", "must be one of: success, fail")
	}
	return o, nil
}

// Prediction is a user's time-bound claim with a point stake.
// Category, Outcome and ResolvedAt are nil until set and serialize as null.
type Prediction struct {
	ID         int64              `json:"id"`
	Title      string             `json:"title"`
	Category   *string            `json:"category"`
	Stake      int                `json:"stake"`
	Username   string             `json:"username"`
	CreatedAt  time.Time          `json:"created_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
	Status     PredictionStatus   `json:"status"`
	Outcome    *PredictionOutcome `json:"outcome"`
	ResolvedAt *time.Time         `json:"resolved_at"`
}

// IsResolved reports whether the prediction reached its terminal state
func (p *Prediction) IsResolved() bool {
	return p.Status == PredictionStatusResolved
}

// CheckResolvable returns nil when the prediction may be resolved at now,
// otherwise the specific invalid-state error.
func (p *Prediction) CheckResolvable(now time.Time) error {
	if p.Status != PredictionStatusOpen {
		return ErrPredictionAlreadyResolved
	}
	if now.Before(p.ExpiresAt) {
		return ErrPredictionNotExpired
	}
	return nil
}

// Resolve applies the resolution fields. Callers must check CheckResolvable first.
func (p *Prediction) Resolve(outcome PredictionOutcome, at time.Time) {
	p.Status = PredictionStatusResolved
	p.Outcome = &outcome
	p.ResolvedAt = &at
}

// Points returns the signed stake a resolved prediction contributes to the
// leaderboard, or zero while it is still open.
func (p *Prediction) Points() int {
	if !p.IsResolved() || p.Outcome == nil {
		return 0
	}
	return p.Outcome.Sign() * p.Stake
}

// Clone returns a deep copy so stored records are never aliased by callers
func (p *Prediction) Clone() *Prediction {
	c := *p
	if p.Category != nil {
		v := *p.Category
		c.Category = &v
	}
	if p.Outcome != nil {
		v := *p.Outcome
		c.Outcome = &v
	}
	if p.ResolvedAt != nil {
		v := *p.ResolvedAt
		c.ResolvedAt = &v
	}
	return &c
}

// PredictionFilter narrows a listing. Nil fields match everything.
type PredictionFilter struct {
	Status   *PredictionStatus
	Username *string
}

// Matches reports whether p satisfies every set field of the filter
func (f PredictionFilter) Matches(p *Prediction) bool {
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Username != nil && p.Username != *f.Username {
		return false
	}
	return true
}

// CreatePredictionInput carries the caller-supplied fields of a new prediction.
// A nil Stake selects the default stake.
type CreatePredictionInput struct {
	Title     string
	Category  *string
	Stake     *int
	ExpiresAt time.Time
	Username  string
}

// LeaderboardEntry is a derived per-user ranking row
type LeaderboardEntry struct {
	Username         string `json:"username"`
	TotalPoints      int    `json:"total_points"`
	PredictionsCount int    `json:"predictions_count"`
}
