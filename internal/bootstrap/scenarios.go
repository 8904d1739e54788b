package bootstrap

import (
	"context"

	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/scenario"
)

// RunScenario replays a YAML scenario against this tracker's bus and
// scheduler, so its updates reach the stream and its kills the death set.
// Runs are serialized; the tick loop keeps running alongside them.
func (t *Tracker) RunScenario(ctx context.Context, doc []byte) (*scenario.ExecutionResult, error) {
	sc, err := t.loader.Parse(doc)
	if err != nil {
		return nil, err
	}

	t.replayMu.Lock()
	defer t.replayMu.Unlock()

	logger.FromContext(ctx).Info(LogMsgScenarioAccepted, "scenario", sc.Name, "pending", t.Scheduler.Pending())
	return scenario.NewEngine(t.Bus, t.Scheduler, t.Codec).Execute(ctx, *sc)
}
