package leaderboard

const (
	ErrMsgGetLeaderboardFailed = "failed to get leaderboard"

	LogMsgFailedToGetLeaderboard = "Failed to load resolved predictions for leaderboard"
	LogMsgComputedLeaderboard    = "Computed leaderboard"
)
