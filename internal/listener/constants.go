package listener

// Shape labels for the dispatch metric
const (
	ShapeByEntity = "by_entity"
	ShapeGeneric  = "generic"
	ShapeByBlock  = "by_block"
)

// Log messages
const (
	LogMsgEventCancelled   = "Combat event cancelled, ignoring"
	LogMsgVictimNotLiving  = "Victim is not a living entity, ignoring"
	LogMsgObligationsFound = "Scheduling statistic updates"
	LogMsgStaleTarget      = "Update target gone, dropping"
	LogMsgUpdateFailed     = "Statistic update abandoned"
	LogMsgStatUpdated      = "Statistic updated"
	LogMsgPublishFailed    = "Failed to announce statistic update"
)

// Error messages
const (
	ErrMsgDecodeFailed = "failed to decode %s event: %w"
)
