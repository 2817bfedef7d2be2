package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/underoot/maksugr.com/internal/ports"
)

// Watcher reruns the pipeline on a fixed interval for local authoring
// sessions. The production build runs the pipeline exactly once.
type Watcher struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewWatcher wires the interval driver with the pipeline use case.
func NewWatcher(driver ports.Scheduler, pipeline *Pipeline, logger *slog.Logger) *Watcher {
	return &Watcher{driver: driver, pipeline: pipeline, logger: logger}
}

// Start registers the rebuild job with the provided scheduler. A
// failed rebuild is logged and the loop keeps going; authors fix the
// content and the next tick picks it up.
func (w *Watcher) Start(ctx context.Context) error {
	if w.driver == nil || w.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if err := w.pipeline.GenerateMainFeeds(ctx); err != nil {
			if w.logger != nil {
				w.logger.Error("rebuild failed", "trigger", trigger.Format(time.RFC3339), "error", err)
			}
		}
	}

	return w.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.driver == nil {
		return nil
	}

	return w.driver.Stop(ctx)
}
