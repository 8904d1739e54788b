package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets are the histogram buckets for the metrics endpoint
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

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
)

// Event Metrics
var (
	CombatEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatEvents,
			Help: HelpTextCombatEvents,
		},
		[]string{LabelType, LabelCause},
	)

	DispatchResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDispatchResult,
			Help: HelpTextDispatchResult,
		},
		[]string{LabelShape, LabelOutcome},
	)
)

// Tracker Metrics
var (
	StatUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatUpdates,
			Help: HelpTextStatUpdates,
		},
		[]string{LabelStat},
	)

	ArmorDamage = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameArmorDamage,
			Help: HelpTextArmorDamage,
		},
	)

	Anomalies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnomalies,
			Help: HelpTextAnomalies,
		},
		[]string{LabelKind},
	)

	MutationsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMutationsDropped,
			Help: HelpTextMutationsDropped,
		},
		[]string{LabelReason},
	)

	SchedulerPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSchedulerPending,
			Help: HelpTextSchedulerPending,
		},
	)

	SchedulerExecuted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSchedulerExecuted,
			Help: HelpTextSchedulerExecuted,
		},
	)
)

// Stream Metrics
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreamDropped,
			Help: HelpTextStreamDropped,
		},
	)
)
