package commands

import (
	"context"
	"log/slog"
)

// AddMenuItemCommandHandler adds items to restaurant menus.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
	logger     *slog.Logger
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory, logger *slog.Logger) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "add_menu_item"),
	}
}

// Handle processes the command.
// Returns *errs.ObjectNotFoundError for an unknown restaurant or the MenuItem
// validation errors.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	if err = r.AddMenuItem(cmd.ItemName(), cmd.Price()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Menu item added",
		"restaurant", r.Name(),
		"item", cmd.ItemName(),
		"price", cmd.Price().String(),
	)
	return nil
}
