package bootstrap

import (
	"log/slog"

	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/listener"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
	"github.com/ArmaRealms/ToolStats/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus   event.Bus
	Dispatcher *listener.Dispatcher
	Hub        *sse.Hub
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Combat dispatcher (turns damage events into scheduled statistic updates)
// - Metrics collector (counts events by type)
// - Stream subscriber (forwards applied updates to the hub)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	deps.Dispatcher.Register(deps.EventBus)
	slog.Info(LogMsgDispatcherRegistered)

	sse.NewSubscriber(deps.Hub).Register(deps.EventBus)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
