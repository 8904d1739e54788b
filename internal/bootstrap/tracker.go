package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/item"
	"github.com/ArmaRealms/ToolStats/internal/listener"
	"github.com/ArmaRealms/ToolStats/internal/lore"
	"github.com/ArmaRealms/ToolStats/internal/scenario"
	"github.com/ArmaRealms/ToolStats/internal/scheduler"
	"github.com/ArmaRealms/ToolStats/internal/sse"
	"github.com/ArmaRealms/ToolStats/internal/stats"
	"github.com/ArmaRealms/ToolStats/internal/utils"
)

// Tracker is the assembled statistics tracker: the bus the host publishes
// combat events on, the dispatcher listening on it and the scheduler that
// applies updates on the next tick. Hub is not started here; only the
// long-running server streams updates.
type Tracker struct {
	ToolStats  *config.ToolStats
	Bus        *event.MemoryBus
	Scheduler  *scheduler.Scheduler
	Codec      *stats.Codec
	Dispatcher *listener.Dispatcher
	Hub        *sse.Hub

	loader   *scenario.Loader
	replayMu sync.Mutex
}

// NewTracker loads the tool stats config named by cfg and assembles a tracker
func NewTracker(ctx context.Context, cfg *config.Config) (*Tracker, error) {
	classifier := item.NewClassifier()
	ts, err := config.LoadToolStats(ctx, cfg.ToolStatsPath, classifier)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadToolStatsFailed, err)
	}
	return AssembleTracker(ts, classifier, cfg.TrackedDeathCapacity, cfg.TrackedDeathTTL), nil
}

// AssembleTracker wires a tracker from an already loaded config
func AssembleTracker(ts *config.ToolStats, classifier *item.Classifier, deathCapacity int, deathTTL time.Duration) *Tracker {
	bus := InitializeEventSystem()
	sched := scheduler.New()
	codec := stats.NewCodec()
	renderer := lore.NewRenderer(ts, utils.NewNumberFormat(ts.Locale()))
	dispatcher := listener.NewDispatcher(
		classifier,
		listener.NewTrackedDeaths(deathCapacity, deathTTL),
		codec,
		renderer,
		sched,
	)

	hub := sse.NewHub()

	RegisterEventHandlers(EventHandlerDependencies{
		EventBus:   bus,
		Dispatcher: dispatcher,
		Hub:        hub,
	})

	slog.Info(LogMsgTrackerReady, "locale", ts.Locale().String(), "armor_descriptions", ts.IsArmorDamageEnabled())

	return &Tracker{
		ToolStats:  ts,
		Bus:        bus,
		Scheduler:  sched,
		Codec:      codec,
		Dispatcher: dispatcher,
		Hub:        hub,
		loader:     scenario.NewLoader(nil),
	}
}

// CheckHealth fails when updates pile up faster than ticks apply them
func (t *Tracker) CheckHealth(_ context.Context) error {
	if pending := t.Scheduler.Pending(); pending > MaxPendingBacklog {
		return fmt.Errorf(ErrMsgBacklog, pending)
	}
	return nil
}
