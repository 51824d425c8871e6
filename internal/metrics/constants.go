package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_rate_limited_total"
)

// Prediction metric names
const (
	MetricNamePredictionsCreated      = "callboard_predictions_created_total"
	MetricNamePredictionsResolved     = "callboard_predictions_resolved_total"
	MetricNameResolveRejected         = "callboard_resolve_rejected_total"
	MetricNameLeaderboardComputations = "callboard_leaderboard_computations_total"
	MetricNameLeaderboardDuration     = "callboard_leaderboard_compute_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of requests rejected by the rate limiter"
)

// Prediction metric help text
const (
	HelpTextPredictionsCreated      = "Total number of predictions created"
	HelpTextPredictionsResolved     = "Total number of predictions resolved, by outcome"
	HelpTextResolveRejected         = "Total number of resolve attempts rejected, by reason"
	HelpTextLeaderboardComputations = "Total number of leaderboard computations"
	HelpTextLeaderboardDuration     = "Time spent aggregating the leaderboard in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
)

// Reject reasons recorded on MetricNameResolveRejected
const (
	ReasonAlreadyResolved = "already_resolved"
	ReasonNotExpired      = "not_expired"
	ReasonNotFound        = "not_found"
	ReasonInvalidOutcome  = "invalid_outcome"
)

// PathUnmatched labels requests that did not match any route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ComputeLatencyBuckets covers in-process aggregation, 10µs to 1s
var ComputeLatencyBuckets = []float64{.00001, .0001, .0005, .001, .005, .01, .05, .1, .5, 1}
