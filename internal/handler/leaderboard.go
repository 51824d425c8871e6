package handler

import (
	"net/http"

	"github.com/osse101/callboard/internal/leaderboard"
)

// HandleGetLeaderboard returns the ranking recomputed from resolved predictions
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.GetLeaderboard(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGetLeaderboard, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
