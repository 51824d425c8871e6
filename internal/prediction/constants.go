package prediction

// Field limits, counted in runes after trimming and NFC normalisation
const (
	MaxTitleLength    = 200
	MaxCategoryLength = 50
	MaxUsernameLength = 50
)

// MaxExpiresYear bounds expires_at to four-digit years
const MaxExpiresYear = 9999

// DefaultStake is used when a create request omits the stake
const DefaultStake = 10

// Error messages
const (
	ErrMsgFailedToCreatePrediction  = "failed to create prediction"
	ErrMsgFailedToListPredictions   = "failed to list predictions"
	ErrMsgFailedToGetPrediction     = "failed to get prediction"
	ErrMsgFailedToResolvePrediction = "failed to resolve prediction"
)

// Validation messages
const (
	MsgRequired         = "is required"
	MsgTooLong          = "must be at most %d characters"
	MsgStakeOutOfRange  = "must be between %d and %d"
	MsgExpiresNotFuture = "must be after the creation time"
	MsgExpiresTooFar    = "must be before the year %d"
)

// Log messages
const (
	LogMsgPredictionCreated  = "Prediction created"
	LogMsgPredictionResolved = "Prediction resolved"
	LogMsgResolveRejected    = "Resolve rejected"
)
