package bootstrap

import (
	"context"
	"log/slog"

	"github.com/ArmaRealms/ToolStats/internal/scheduler"
	"github.com/ArmaRealms/ToolStats/internal/server"
	"github.com/ArmaRealms/ToolStats/internal/sse"
)

// ShutdownComponents lists what GracefulShutdown stops. Server and Hub are
// optional; Scheduler is not.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Hub       *sse.Hub
}

type shutdownStep struct {
	name string
	run  func(context.Context) error
}

// steps orders the shutdown. Stream clients go first because an open stream
// keeps the server from draining. The final tick runs updates that were
// scheduled before the loop stopped.
func (c ShutdownComponents) steps() []shutdownStep {
	var steps []shutdownStep
	if c.Hub != nil {
		steps = append(steps, shutdownStep{"stream", func(context.Context) error {
			c.Hub.Stop()
			return nil
		}})
	}
	if c.Server != nil {
		steps = append(steps, shutdownStep{"server", c.Server.Stop})
	}
	return append(steps,
		shutdownStep{"tick loop", func(context.Context) error {
			c.Scheduler.Stop()
			return nil
		}},
		shutdownStep{"pending updates", func(ctx context.Context) error {
			slog.Info(LogMsgDrainingUpdates, "pending", c.Scheduler.Pending())
			c.Scheduler.Tick(ctx)
			return nil
		}},
	)
}

// GracefulShutdown runs every step even when an earlier one fails.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	for _, step := range components.steps() {
		slog.Debug(LogMsgShutdownStep, "step", step.name)
		if err := step.run(ctx); err != nil {
			slog.Error(LogMsgShutdownStepFailed, "step", step.name, "error", err)
		}
	}
	slog.Info(LogMsgShutdownComplete)
}
