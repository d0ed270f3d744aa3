// Package scheduler runs the recurring reference-data jobs on their own
// timers, outside the request-handling path.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one schedulable unit of work. Jobs are idempotent: the same
// operations also run synchronously during bootstrap.
type Job func(ctx context.Context) error

// Scheduler wraps a process-wide cron runner. Each registered job fires on
// its own schedule; jobs share no lock and may be inflight simultaneously.
// Failures are logged at the job boundary and never propagate.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a Scheduler using standard 5-field cron expressions.
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Register adds a named job on the given cron spec.
func (s *Scheduler) Register(spec, name string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		logger := s.logger.With(slog.String("job", name))
		logger.Info("Scheduled job started")

		if err := job(context.Background()); err != nil {
			// Logged and skipped; the next scheduled run retries.
			logger.Error("Scheduled job failed",
				slog.String("error", err.Error()),
				slog.Duration("elapsed", time.Since(start)),
			)
			return
		}

		logger.Info("Scheduled job completed", slog.Duration("elapsed", time.Since(start)))
	})
	return err
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron runner and waits for inflight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
