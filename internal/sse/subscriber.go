package sse

import (
	"context"
	"log/slog"

	"github.com/ArmaRealms/ToolStats/internal/event"
)

// Subscriber bridges StatUpdated events on the bus to the hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a subscriber feeding hub
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Register subscribes to applied statistic updates
func (s *Subscriber) Register(bus event.Bus) {
	bus.Subscribe(event.StatUpdated, s.handleStatUpdated)
	slog.Info(LogMsgSubscriberReady, "type", event.StatUpdated)
}

func (s *Subscriber) handleStatUpdated(_ context.Context, evt event.Event) error {
	update, err := event.DecodeStatUpdate(evt)
	if err != nil {
		return err
	}
	s.hub.Broadcast(update)
	return nil
}
