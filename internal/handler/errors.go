package handler

// Generic HTTP error messages for client responses.
// They never include internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPredictionID   = "Invalid prediction ID"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"

	// Prediction messages
	ErrMsgPredictionNotFound        = "Prediction not found"
	ErrMsgPredictionAlreadyResolved = "Prediction is already resolved"
	ErrMsgPredictionNotExpired      = "Prediction has not expired yet"
	ErrMsgPredictionNotResolvable   = "Prediction cannot be resolved"

	// Field messages
	ErrMsgInvalidTimestamp = "Must be an ISO 8601 timestamp"
)

// Operation names used in logs
const (
	OpCreatePrediction  = "Create prediction"
	OpListPredictions   = "List predictions"
	OpGetPrediction     = "Get prediction"
	OpResolvePrediction = "Resolve prediction"
	OpGetLeaderboard    = "Get leaderboard"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStorageUnavailable   = "storage connection failed"
)
