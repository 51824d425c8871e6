package postgres

// Error messages for prediction persistence
const (
	ErrMsgFailedToInsertPrediction  = "failed to insert prediction"
	ErrMsgFailedToGetPrediction     = "failed to get prediction"
	ErrMsgFailedToListPredictions   = "failed to list predictions"
	ErrMsgFailedToScanPrediction    = "failed to scan prediction"
	ErrMsgFailedToResolvePrediction = "failed to resolve prediction"
)

// Log messages
const (
	LogMsgResolveMissWithoutReason = "Resolve matched no row but prediction looks resolvable"
)
