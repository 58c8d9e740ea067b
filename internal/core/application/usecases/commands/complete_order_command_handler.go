package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler completes accepted orders.
//
// Example:
//
//	cmd, _ := NewCompleteOrderCommand(1)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order id
//	case errors.Is(err, errs.ErrStateIsInvalid):
//	    // order is not Accepted
//	}
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_order"),
	}
}

// Handle processes the command.
// Returns *errs.ObjectNotFoundError for an unknown id and *errs.StateIsInvalidError
// when the order is not Accepted; the order is unchanged in both cases.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
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

// completeOrder marks o completed and stores both aggregates it touches.
func completeOrder(ctx context.Context, uow UoW, o *order.Order) error {
	if err := o.MarkCompleted(); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if r := o.Restaurant(); r != nil {
		return uow.RestaurantRepository().Update(ctx, r)
	}
	return nil
}
