package listener

import (
	"context"
	"errors"

	"github.com/ArmaRealms/ToolStats/internal/attribution"
	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/lore"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
	"github.com/ArmaRealms/ToolStats/internal/stats"
)

// mutation applies one obligation when the scheduler runs it. The counter is
// read from the item the holder has at that moment, so several updates
// queued for the same item in one tick all land.
type mutation struct {
	codec      *stats.Codec
	renderer   *lore.Renderer
	bus        event.Bus
	obligation attribution.Obligation
	dispatchID string
}

// Process never fails: every problem is logged and the update dropped
func (m *mutation) Process(ctx context.Context) error {
	if m.dispatchID != "" {
		ctx = logger.WithDispatchID(ctx, m.dispatchID)
	}
	log := logger.FromContext(ctx)
	ob := m.obligation

	current, err := ob.Holder.Resolve()
	if err != nil {
		m.drop(ctx, err)
		return nil
	}

	var (
		updated domain.Item
		value   float64
	)
	if ob.Kind.Integral() {
		var n int
		updated, n, err = m.codec.Increment(ctx, current, ob.Kind)
		value = float64(n)
	} else {
		updated, value, err = m.codec.Accumulate(ctx, current, ob.Kind, ob.Amount)
	}
	if err != nil {
		m.drop(ctx, err)
		return nil
	}

	rendered, err := m.renderer.Render(ctx, updated, ob.Kind, value)
	switch {
	case err == nil:
		updated = rendered
	case errors.Is(err, domain.ErrMissingTemplate):
		// keep the counter, skip the description
	default:
		m.drop(ctx, err)
		return nil
	}

	if err := ob.Holder.Replace(updated); err != nil {
		m.drop(ctx, err)
		return nil
	}

	metrics.StatUpdates.WithLabelValues(string(ob.Kind)).Inc()
	if ob.Kind == domain.StatArmorDamage && ob.Amount > 0 {
		metrics.ArmorDamage.Add(ob.Amount)
	}
	log.Debug(LogMsgStatUpdated, "holder", ob.Holder.String(), "stat", ob.Kind, "value", value)

	if m.bus != nil {
		update := domain.StatUpdate{
			Holder:   ob.Holder.String(),
			Material: updated.Material,
			Stat:     ob.Kind,
			Value:    value,
		}
		if err := m.bus.Publish(ctx, event.NewStatUpdatedEvent(update)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return nil
}

func (m *mutation) drop(ctx context.Context, err error) {
	log := logger.FromContext(ctx)
	if errors.Is(err, domain.ErrStaleTarget) {
		metrics.MutationsDropped.WithLabelValues(metrics.ReasonStaleTarget).Inc()
		log.Debug(LogMsgStaleTarget, "holder", m.obligation.Holder.String(), "stat", m.obligation.Kind)
		return
	}
	metrics.MutationsDropped.WithLabelValues(metrics.ReasonFailed).Inc()
	log.Warn(LogMsgUpdateFailed, "holder", m.obligation.Holder.String(), "stat", m.obligation.Kind, "error", err)
}
