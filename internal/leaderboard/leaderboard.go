package leaderboard

import (
	"sort"

	"github.com/osse101/callboard/internal/domain"
)

// Compute aggregates resolved predictions into ranked per-user totals.
//
// Each resolved prediction adds +stake on success and -stake on fail. Open
// predictions are ignored, so users with nothing resolved do not appear.
// Entries are ordered by total points descending, then username ascending.
// The result is never nil.
func Compute(predictions []domain.Prediction) []domain.LeaderboardEntry {
	byUser := make(map[string]*domain.LeaderboardEntry)

	for i := range predictions {
		p := &predictions[i]
		if !p.IsResolved() || p.Outcome == nil {
			continue
		}

		entry, ok := byUser[p.Username]
		if !ok {
			entry = &domain.LeaderboardEntry{Username: p.Username}
			byUser[p.Username] = entry
		}
		entry.TotalPoints += p.Points()
		entry.PredictionsCount++
	}

	entries := make([]domain.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Username < entries[j].Username
	})

	return entries
}
