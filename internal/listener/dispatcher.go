// Package listener holds the entry points the host calls for combat events.
// Each entry point filters the event, resolves the items it credits and
// schedules one deferred update per item.
package listener

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/attribution"
	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/lore"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
	"github.com/ArmaRealms/ToolStats/internal/scheduler"
	"github.com/ArmaRealms/ToolStats/internal/stats"
)

// Scheduler defers work to the next tick
type Scheduler interface {
	Schedule(task scheduler.Task)
}

// Dispatcher receives the three combat event shapes
type Dispatcher struct {
	resolver *attribution.Resolver
	deaths   *TrackedDeaths
	codec    *stats.Codec
	renderer *lore.Renderer
	sched    Scheduler
	bus      event.Bus
}

// NewDispatcher wires a dispatcher
func NewDispatcher(
	classifier attribution.Classifier,
	deaths *TrackedDeaths,
	codec *stats.Codec,
	renderer *lore.Renderer,
	sched Scheduler,
) *Dispatcher {
	return &Dispatcher{
		resolver: attribution.NewResolver(classifier, deaths),
		deaths:   deaths,
		codec:    codec,
		renderer: renderer,
		sched:    sched,
	}
}

// Register subscribes the entry points to the combat event types. Applied
// updates are announced on the same bus as StatUpdated events.
func (d *Dispatcher) Register(bus event.Bus) {
	d.bus = bus
	bus.Subscribe(event.EntityDamageByEntity, d.handle(d.OnEntityDamageByEntity))
	bus.Subscribe(event.EntityDamage, d.handle(d.OnEntityDamage))
	bus.Subscribe(event.EntityDamageByBlock, d.handle(d.OnEntityDamageByBlock))
}

func (d *Dispatcher) handle(entry func(context.Context, domain.CombatEvent) int) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		combat, err := event.DecodeCombat(evt)
		if err != nil {
			return fmt.Errorf(ErrMsgDecodeFailed, evt.Type, err)
		}
		if id, ok := evt.GetMetadataValue(event.MetadataKeyDispatchID).(string); ok {
			ctx = logger.WithDispatchID(ctx, id)
		}
		entry(ctx, combat)
		return nil
	}
}

// OnEntityDamageByEntity handles a hit with a responsible actor. It is the
// only shape that can credit a weapon. Returns the number of updates scheduled.
func (d *Dispatcher) OnEntityDamageByEntity(ctx context.Context, evt domain.CombatEvent) int {
	return d.dispatch(ctx, ShapeByEntity, evt, d.resolver.Resolve)
}

// OnEntityDamage handles environmental damage. Only armor is credited.
func (d *Dispatcher) OnEntityDamage(ctx context.Context, evt domain.CombatEvent) int {
	return d.dispatch(ctx, ShapeGeneric, evt, d.resolver.ResolveArmor)
}

// OnEntityDamageByBlock handles block-inflicted damage. Only armor is credited.
func (d *Dispatcher) OnEntityDamageByBlock(ctx context.Context, evt domain.CombatEvent) int {
	return d.dispatch(ctx, ShapeByBlock, evt, d.resolver.ResolveArmor)
}

// Attributed reports whether the entity's death already credited a kill
func (d *Dispatcher) Attributed(id uuid.UUID) bool {
	return d.deaths.Attributed(id)
}

// Forget clears a tracked death
func (d *Dispatcher) Forget(id uuid.UUID) {
	d.deaths.Forget(id)
}

type resolveFunc func(context.Context, domain.CombatEvent) []attribution.Obligation

func (d *Dispatcher) dispatch(ctx context.Context, shape string, evt domain.CombatEvent, resolve resolveFunc) int {
	log := logger.FromContext(ctx)

	if evt.Cancelled {
		log.Debug(LogMsgEventCancelled, "shape", shape)
		d.record(shape, metrics.OutcomeCancelled)
		return 0
	}
	if _, ok := evt.LivingVictim(); !ok {
		log.Debug(LogMsgVictimNotLiving, "shape", shape)
		d.record(shape, metrics.OutcomeNotLiving)
		return 0
	}
	if evt.Cause.Ignored() {
		d.record(shape, metrics.OutcomeIgnored)
		return 0
	}

	obligations := resolve(ctx, evt)
	if len(obligations) == 0 {
		d.record(shape, metrics.OutcomeNoop)
		return 0
	}

	log.Debug(LogMsgObligationsFound, "shape", shape, "cause", evt.Cause, "count", len(obligations))
	dispatchID := logger.GetDispatchID(ctx)
	for _, ob := range obligations {
		d.sched.Schedule(&mutation{
			codec:      d.codec,
			renderer:   d.renderer,
			bus:        d.bus,
			obligation: ob,
			dispatchID: dispatchID,
		})
	}
	d.record(shape, metrics.OutcomeScheduled)
	return len(obligations)
}

func (d *Dispatcher) record(shape, outcome string) {
	metrics.DispatchResults.WithLabelValues(shape, outcome).Inc()
}
