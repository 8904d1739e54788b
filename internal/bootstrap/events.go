package bootstrap

import (
	"log/slog"

	"github.com/ArmaRealms/ToolStats/internal/event"
)

// InitializeEventSystem creates the bus combat events are published on.
// Handlers run synchronously on the publisher's goroutine, which is what
// lets the dispatcher capture event-time state.
func InitializeEventSystem() *event.MemoryBus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.CombatTypes))
	return eventBus
}
