package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests  = "Too many requests. Please try again later."
	ErrMsgNotFound         = "Not found"
	ErrMsgMethodNotAllowed = "Method not allowed"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgRateLimited      = "Request rate limited"
)

// HTTP header names
const (
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderRetryAfter     = "Retry-After"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths that are not access-logged
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces sensitive header values in debug logs
const RedactedValue = "[REDACTED]"

const (
	// MaxRequestBodyBytes caps JSON request bodies
	MaxRequestBodyBytes = 1 << 20

	readHeaderTimeout = 5 * time.Second
	corsMaxAgeSeconds = 300

	// Rate limiter bookkeeping: at most this many client IPs are tracked,
	// each forgotten after rateLimiterIdleTTL without traffic.
	rateLimiterMaxClients = 10_000
	rateLimiterIdleTTL    = 10 * time.Minute
)
