package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
)

// Task is a unit of work deferred to the next tick
type Task interface {
	Process(ctx context.Context) error
}

// TaskFunc adapts a function to Task
type TaskFunc func(ctx context.Context) error

// Process calls f
func (f TaskFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Scheduler queues tasks and runs them on the next tick, one at a time, in
// the order they were scheduled. Tasks scheduled while a tick drains wait for
// the following tick.
type Scheduler struct {
	mu      sync.Mutex
	pending []Task
	running sync.Mutex

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		quit: make(chan struct{}),
	}
}

// Schedule queues a task for the next tick. Safe to call from any goroutine,
// including from a running task.
func (s *Scheduler) Schedule(task Task) {
	s.mu.Lock()
	s.pending = append(s.pending, task)
	n := len(s.pending)
	s.mu.Unlock()

	metrics.SchedulerPending.Set(float64(n))
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Tick runs every task queued before the call and returns how many ran.
// A failing task is logged and does not stop the rest.
func (s *Scheduler) Tick(ctx context.Context) int {
	s.running.Lock()
	defer s.running.Unlock()

	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()
	metrics.SchedulerPending.Set(0)

	for _, task := range batch {
		if err := task.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgTaskFailed, "error", err)
		}
		metrics.SchedulerExecuted.Inc()
	}

	s.mu.Lock()
	metrics.SchedulerPending.Set(float64(len(s.pending)))
	s.mu.Unlock()

	return len(batch)
}

// Run ticks at the given interval until Stop is called or ctx is done
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log := logger.FromContext(ctx)
		log.Info(LogMsgSchedulerStarted, "interval", interval)
		defer log.Info(LogMsgSchedulerStopped, "pending", s.Pending())

		for {
			select {
			case <-ticker.C:
				s.Tick(ctx)
			case <-s.quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the tick loop and waits for an in-flight tick to finish.
// Tasks still queued are left in place; call Tick to drain them.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
