package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// OrderPlacementJob places the next order from its feed on every tick.
type OrderPlacementJob struct {
	handler  commands.PlaceOrderCommandHandler
	feed     OrderFeed
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderPlacementJob creates the job. schedule is a cron spec with seconds.
func NewOrderPlacementJob(
	handler commands.PlaceOrderCommandHandler,
	feed OrderFeed,
	schedule string,
	logger *slog.Logger,
) *OrderPlacementJob {
	return &OrderPlacementJob{
		handler:  handler,
		feed:     feed,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_placement_job"),
	}
}

// RunOnce places a single order. Rejections are part of normal operation and
// are not returned as errors.
func (j *OrderPlacementJob) RunOnce(ctx context.Context) error {
	cmd, err := j.feed.Next(ctx)
	if err != nil {
		return err
	}

	_, err = j.handler.Handle(ctx, cmd)
	if errors.Is(err, services.ErrNoEligibleRestaurant) || errors.Is(err, services.ErrRestaurantNotSelected) {
		return nil
	}
	return err
}

// Start schedules the job.
func (j *OrderPlacementJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order placement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order placement job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running tick to finish.
func (j *OrderPlacementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order placement job stopped")
}
