package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/pkg/errs"
)

// ErrNoOrderFound is returned when there is no accepted order to complete.
var ErrNoOrderFound = errors.New("no order found")

// CompleteNextOrderCommandHandler completes the accepted order with the lowest id.
type CompleteNextOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCompleteNextOrderCommandHandler creates the handler.
func NewCompleteNextOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CompleteNextOrderCommandHandler {
	return CompleteNextOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_next_order"),
	}
}

// Handle processes the command. Returns ErrNoOrderFound when no order is Accepted.
func (h CompleteNextOrderCommandHandler) Handle(ctx context.Context, command CompleteNextOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetFirstInAcceptedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if err = completeOrder(ctx, uow, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order completed",
		"order_id", o.ID(),
		"restaurant", o.RestaurantName(),
	)
	return nil
}
