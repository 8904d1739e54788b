package stats

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgNotIntegral = "%w: %s is not an integer statistic"
	ErrMsgNotDecimal  = "%w: %s is not a decimal statistic"
	ErrMsgNoMetadata  = "%w: %s"
	ErrMsgCorrupt     = "%w: %s holds %T"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMissingMetadata = "Item does NOT have any meta! Unable to update stats."
	LogMsgCorruptCounter  = "Item does not have a valid counter set! Resetting to zero."
	LogMsgCounterWritten  = "Counter written"
)
