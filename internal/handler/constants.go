package handler

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// URL parameters
const (
	ParamEntityID = "entityID"
)

// User-facing error messages
const (
	ErrMsgInvalidEntityID  = "Invalid entity id"
	ErrMsgScenarioTooLarge = "Scenario document too large"
	ErrMsgReadBodyFailed   = "Failed to read request body"
	ErrMsgEmptyScenario    = "Scenario document is empty"
	ErrMsgScenarioFailed   = "Scenario could not be replayed"
)

// Success messages
const (
	MsgDeathForgotten = "Death forgotten"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgDeathForgotten   = "Tracked death forgotten"
	LogMsgScenarioFailed   = "Scenario replay failed"
	LogMsgScenarioReplayed = "Scenario replayed"
)
