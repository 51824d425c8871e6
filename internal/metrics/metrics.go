package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Prediction Metrics
var (
	PredictionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsCreated,
			Help: HelpTextPredictionsCreated,
		},
	)

	PredictionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsResolved,
			Help: HelpTextPredictionsResolved,
		},
		[]string{LabelOutcome},
	)

	ResolveRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolveRejected,
			Help: HelpTextResolveRejected,
		},
		[]string{LabelReason},
	)

	LeaderboardComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardComputations,
			Help: HelpTextLeaderboardComputations,
		},
	)

	LeaderboardDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLeaderboardDuration,
			Help:    HelpTextLeaderboardDuration,
			Buckets: ComputeLatencyBuckets,
		},
	)
)
