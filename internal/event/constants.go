package event

import "errors"

// SchemaVersion is stamped on every event built by the constructors here.
const SchemaVersion = "1.0"

// MetadataKeyDispatchID carries the correlation id listeners log under.
const MetadataKeyDispatchID = "dispatch_id"

// ErrHandlerFailed wraps the joined errors of the handlers that failed
// during one Publish.
var ErrHandlerFailed = errors.New("event handler failed")

const (
	ErrMsgHandlersFailed   = "%w: %s (%d of %d): %w"
	ErrMsgNotCombatPayload = "event %s does not carry a combat payload"
	ErrMsgNotStatPayload   = "event %s does not carry a statistic update"
)
