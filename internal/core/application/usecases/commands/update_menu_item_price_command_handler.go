package commands

import (
	"context"
	"log/slog"
)

// UpdateMenuItemPriceCommandHandler reprices menu items.
type UpdateMenuItemPriceCommandHandler struct {
	uowFactory RestaurantUoWFactory
	logger     *slog.Logger
}

// NewUpdateMenuItemPriceCommandHandler creates a handler for menu repricing.
func NewUpdateMenuItemPriceCommandHandler(uowFactory RestaurantUoWFactory, logger *slog.Logger) UpdateMenuItemPriceCommandHandler {
	return UpdateMenuItemPriceCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_menu_item_price"),
	}
}

// Handle processes the command.
// Returns *errs.ObjectNotFoundError when the restaurant or the item is unknown,
// or a validation error for a non positive price.
func (h UpdateMenuItemPriceCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemPriceCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	r, err := restaurantRepo.Get(ctx, cmd.RestaurantName())
	if err != nil {
		return err
	}

	if err = r.UpdateMenuItemPrice(cmd.ItemName(), cmd.Price()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Menu item price updated",
		"restaurant", r.Name(),
		"item", cmd.ItemName(),
		"price", cmd.Price().String(),
	)
	return nil
}
