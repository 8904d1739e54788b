package scheduler

// Log messages
const (
	LogMsgTaskFailed       = "Scheduled task failed"
	LogMsgSchedulerStarted = "Scheduler started"
	LogMsgSchedulerStopped = "Scheduler stopped"
)
