package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Combat event types, one per shape the host delivers
const (
	EntityDamageByEntity Type = "entity.damage.by_entity"
	EntityDamage         Type = "entity.damage"
	EntityDamageByBlock  Type = "entity.damage.by_block"
)

// StatUpdated is published after a deferred update lands on an item
const StatUpdated Type = "item.stat.updated"

// CombatTypes lists every combat event type
var CombatTypes = []Type{EntityDamageByEntity, EntityDamage, EntityDamageByBlock}

// NewCombatEvent wraps a combat event of the given shape. Each event carries a
// fresh dispatch id used to correlate log lines.
func NewCombatEvent(eventType Type, combat domain.CombatEvent) Event {
	return Event{
		Version: SchemaVersion,
		Type:    eventType,
		Payload: combat,
		Metadata: map[string]interface{}{
			MetadataKeyDispatchID: uuid.NewString(),
		},
	}
}

// NewEntityDamageByEntityEvent creates an entity-vs-entity damage event
func NewEntityDamageByEntityEvent(combat domain.CombatEvent) Event {
	return NewCombatEvent(EntityDamageByEntity, combat)
}

// NewEntityDamageEvent creates a generic (environmental) damage event
func NewEntityDamageEvent(combat domain.CombatEvent) Event {
	return NewCombatEvent(EntityDamage, combat)
}

// NewEntityDamageByBlockEvent creates a block-inflicted damage event
func NewEntityDamageByBlockEvent(combat domain.CombatEvent) Event {
	return NewCombatEvent(EntityDamageByBlock, combat)
}

// DecodeCombat extracts the combat payload. Combat payloads hold live entity
// references, so only in-process events can carry one.
func DecodeCombat(evt Event) (domain.CombatEvent, error) {
	switch p := evt.Payload.(type) {
	case domain.CombatEvent:
		return p, nil
	case *domain.CombatEvent:
		if p != nil {
			return *p, nil
		}
	}
	return domain.CombatEvent{}, fmt.Errorf(ErrMsgNotCombatPayload, evt.Type)
}

// NewStatUpdatedEvent wraps an applied statistic change
func NewStatUpdatedEvent(update domain.StatUpdate) Event {
	return Event{
		Version: SchemaVersion,
		Type:    StatUpdated,
		Payload: update,
	}
}

// DecodeStatUpdate extracts the statistic change from a StatUpdated event
func DecodeStatUpdate(evt Event) (domain.StatUpdate, error) {
	if update, ok := evt.Payload.(domain.StatUpdate); ok {
		return update, nil
	}
	return domain.StatUpdate{}, fmt.Errorf(ErrMsgNotStatPayload, evt.Type)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously on
// the caller's goroutine, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailed, ErrHandlerFailed, event.Type, len(errs), len(handlers), errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
