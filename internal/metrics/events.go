package metrics

import (
	"context"

	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/logger"
)

// EventMetricsCollector subscribes to combat events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every combat event shape
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.CombatTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent counts a published combat event by shape and cause
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	cause := "unknown"
	if payload, err := event.DecodeCombat(evt); err == nil {
		cause = string(payload.Cause)
	}
	CombatEvents.WithLabelValues(string(evt.Type), cause).Inc()

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type, "cause", cause)
	return nil
}
