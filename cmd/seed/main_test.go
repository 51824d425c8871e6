package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/callboard/internal/domain"
)

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name       string
		users      int
		count      int
		resolvePct int
		days       int
		wantErr    string
	}{
		{"defaults", 8, 50, 70, 14, ""},
		{"edges", 1, 0, 0, 1, ""},
		{"all resolved", 1, 1, 100, 1, ""},
		{"no users", 0, 50, 70, 14, "-users"},
		{"negative count", 8, -1, 70, 14, "-predictions"},
		{"percent below zero", 8, 50, -1, 14, "-resolve-percent"},
		{"percent above hundred", 8, 50, 101, 14, "-resolve-percent"},
		{"no history", 8, 50, 70, 0, "-days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFlags(tt.users, tt.count, tt.resolvePct, tt.days)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestResolveTime(t *testing.T) {
	now := time.Date(2025, 8, 27, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *domain.Prediction {
		return &domain.Prediction{ExpiresAt: now.Add(d)}
	}

	assert.Equal(t, now.Add(-time.Hour), resolveTime([]*domain.Prediction{at(-3 * time.Hour), at(-time.Hour)}, now))
	assert.Equal(t, now, resolveTime([]*domain.Prediction{at(-time.Hour), at(5 * time.Hour)}, now), "never in the future")
}
