package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// Schedules holds the cron specs (with seconds) of the simulation jobs.
type Schedules struct {
	Placement  string
	Completion string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderPlacementJob  *OrderPlacementJob
	orderCompletionJob *OrderCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	completeNextOrderHandler commands.CompleteNextOrderCommandHandler,
	feed OrderFeed,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderPlacementJob:  NewOrderPlacementJob(placeOrderHandler, feed, schedules.Placement, logger),
		orderCompletionJob: NewOrderCompletionJob(completeNextOrderHandler, schedules.Completion, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderPlacementJob.Start(); err != nil {
		return fmt.Errorf("failed to start order placement job: %w", err)
	}

	if err := jm.orderCompletionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderPlacementJob.Stop()
		return fmt.Errorf("failed to start order completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderPlacementJob.Stop()
	jm.orderCompletionJob.Stop()
}
