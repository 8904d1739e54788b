package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "toolstats_http_requests_total"
	MetricNameHTTPRequestDuration  = "toolstats_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "toolstats_http_requests_in_flight"
)

// Event metric names
const (
	MetricNameCombatEvents   = "toolstats_combat_events_total"
	MetricNameDispatchResult = "toolstats_events_total"
)

// Tracker metric names
const (
	MetricNameStatUpdates       = "toolstats_stat_updates_total"
	MetricNameArmorDamage       = "toolstats_armor_damage_total"
	MetricNameAnomalies         = "toolstats_anomalies_total"
	MetricNameMutationsDropped  = "toolstats_mutations_dropped_total"
	MetricNameSchedulerPending  = "toolstats_scheduler_pending"
	MetricNameSchedulerExecuted = "toolstats_scheduler_executed_total"
)

// Stream metric names
const (
	MetricNameStreamClients = "toolstats_stream_clients"
	MetricNameStreamDropped = "toolstats_stream_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextCombatEvents   = "Total number of combat events published by the host"
	HelpTextDispatchResult = "Total number of combat events handled, by entry point and outcome"
)

// Tracker metric help text
const (
	HelpTextStatUpdates       = "Total number of item statistic updates applied"
	HelpTextArmorDamage       = "Total damage accrued onto armor pieces"
	HelpTextAnomalies         = "Total number of anomalies reported while updating items"
	HelpTextMutationsDropped  = "Total number of deferred item mutations that were dropped"
	HelpTextSchedulerPending  = "Number of deferred mutations waiting for the next tick"
	HelpTextSchedulerExecuted = "Total number of deferred mutations executed"
)

// Stream metric help text
const (
	HelpTextStreamClients = "Number of clients connected to the statistic update stream"
	HelpTextStreamDropped = "Total number of statistic updates not delivered to a stream client"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCause   = "cause"
	LabelShape   = "shape"
	LabelOutcome = "outcome"
	LabelStat    = "stat"
	LabelKind    = "kind"
	LabelReason  = "reason"
)

// ============================================================================
// Label Values
// ============================================================================

// Dispatch outcomes
const (
	OutcomeCancelled = "cancelled"
	OutcomeNotLiving = "not_living"
	OutcomeIgnored   = "ignored_cause"
	OutcomeNoop      = "noop"
	OutcomeScheduled = "scheduled"
)

// Anomaly kinds
const (
	AnomalyMissingMetadata = "missing_metadata"
	AnomalyCorruptCounter  = "corrupt_counter"
	AnomalyMissingTemplate = "missing_template"
)

// Drop reasons
const (
	ReasonStaleTarget = "stale_target"
	ReasonFailed      = "failed"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Combat event metrics recorded"
)
