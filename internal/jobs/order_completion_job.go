package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCompletionJob completes the oldest accepted order on every tick,
// freeing restaurant capacity for the placement job.
type OrderCompletionJob struct {
	handler  commands.CompleteNextOrderCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderCompletionJob creates the job. schedule is a cron spec with seconds.
func NewOrderCompletionJob(handler commands.CompleteNextOrderCommandHandler, schedule string, logger *slog.Logger) *OrderCompletionJob {
	return &OrderCompletionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_completion_job"),
	}
}

// RunOnce completes one order. Having nothing to complete is not an error.
func (j *OrderCompletionJob) RunOnce(ctx context.Context) error {
	err := j.handler.Handle(ctx, commands.NewCompleteNextOrderCommand())
	if errors.Is(err, commands.ErrNoOrderFound) {
		return nil
	}
	return err
}

// Start schedules the job.
func (j *OrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order completion job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running tick to finish.
func (j *OrderCompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order completion job stopped")
}
