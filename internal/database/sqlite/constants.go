package sqlite

// BusyTimeoutMillis is how long a writer waits for the file lock
const BusyTimeoutMillis = 5000

const (
	ErrMsgFailedToOpen              = "failed to open sqlite database"
	ErrMsgFailedToClose             = "Failed to close sqlite database"
	ErrMsgFailedToInsertPrediction  = "failed to insert prediction"
	ErrMsgFailedToGetPrediction     = "failed to get prediction"
	ErrMsgFailedToListPredictions   = "failed to list predictions"
	ErrMsgFailedToResolvePrediction = "failed to resolve prediction"
	ErrMsgBadTimestamp              = "malformed stored timestamp"
)

const LogMsgResolveMissWithoutReason = "Resolve matched no row but prediction looks resolvable"
