package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArmaRealms/ToolStats/internal/bootstrap"
	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/server"
	"github.com/ArmaRealms/ToolStats/internal/sse"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand runs the tracker's tick loop and, when METRICS_ADDR is set,
// the HTTP API until interrupted. Combat reaches the tracker as scenarios
// POSTed to /api/v1/scenarios.
type ServeCommand struct {
	cfg *config.Config
}

func (c *ServeCommand) Name() string { return "serve" }

func (c *ServeCommand) Description() string {
	return "Run the tracker with its HTTP API (scenario submission, update stream, metrics)"
}

func (c *ServeCommand) Run(_ []string) error {
	logFile, err := bootstrap.SetupLogger(c.cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker, err := bootstrap.NewTracker(ctx, c.cfg)
	if err != nil {
		return err
	}
	tracker.Scheduler.Run(ctx, c.cfg.TickInterval)

	var srv *server.Server
	if c.cfg.MetricsAddr != "" {
		tracker.Hub.Start()
		srv = server.NewServer(c.cfg.MetricsAddr, server.Routes{
			Deaths:    tracker.Dispatcher,
			Stream:    sse.Handler(tracker.Hub),
			Scenarios: tracker,
		}, tracker)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Server failed", "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: tracker.Scheduler,
		Hub:       tracker.Hub,
	})
	return nil
}
