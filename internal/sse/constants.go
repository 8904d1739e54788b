package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64
)

// KeepaliveInterval is how often an idle stream is pinged
const KeepaliveInterval = 30 * time.Second

// Event types sent on the stream
const (
	EventTypeConnected   = "connected"
	EventTypeStatUpdated = "stat.updated"
	EventTypeKeepalive   = "keepalive"
)

// QueryParamStats restricts a stream to a comma separated list of statistics
const QueryParamStats = "stats"

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgSubscriberReady    = "Statistic stream subscribed to update events"
	LogMsgWriteError         = "Failed to write stream event"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "streaming not supported"
	ErrMsgUnknownStat          = "unknown statistic %q"
)
