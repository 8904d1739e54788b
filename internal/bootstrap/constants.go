package bootstrap

// Session log files. Names sort by start time, and one slot is left for the
// session being opened.
const (
	DirPermission          = 0o755
	LogFilePermission      = 0o644
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileGlob            = "session_*.log"
	LogFilesKept           = 9
)

// Log formats picked when LOG_FORMAT is unset
const (
	LogFormatTerminal = "text"
	LogFormatPipe     = "json"
)

// =============================================================================
// Tracker
// =============================================================================

// MaxPendingBacklog is the queued update count above which the tracker
// reports itself unhealthy: the tick loop is not keeping up or has stopped.
const MaxPendingBacklog = 10000

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting ToolStats"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgDispatcherRegistered       = "Combat dispatcher registered"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgTrackerReady               = "Tracker ready"
	LogMsgScenarioAccepted           = "Replaying submitted scenario"
	LogMsgShutdownStep               = "Stopping component"
	LogMsgShutdownStepFailed         = "Component did not stop cleanly"
	LogMsgDrainingUpdates            = "Running pending statistic updates"
	LogMsgShutdownComplete           = "Shutdown complete"
	LogMsgDeleteOldLogFailed         = "Failed to delete old log file"
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgCreateLogDirFailed  = "failed to create logs directory: %w"
	ErrMsgOpenLogFileFailed   = "failed to open log file: %w"
	ErrMsgLoadToolStatsFailed = "failed to load tool stats config: %w"
	ErrMsgBacklog             = "%d statistic updates pending"
)
