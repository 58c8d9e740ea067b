package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
)

// OnboardRestaurantCommandHandler registers new restaurants.
//
// Example:
//
//	handler := NewOnboardRestaurantCommandHandler(uowFactory, logger)
//	cmd, _ := NewOnboardRestaurantCommand("R3", 1, 4.9)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // name already taken
//	}
type OnboardRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	logger     *slog.Logger
}

// NewOnboardRestaurantCommandHandler creates a handler for restaurant onboarding.
func NewOnboardRestaurantCommandHandler(uowFactory RestaurantUoWFactory, logger *slog.Logger) OnboardRestaurantCommandHandler {
	return OnboardRestaurantCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "onboard_restaurant"),
	}
}

// Handle processes the onboarding command.
// Returns *errs.ObjectAlreadyExistsError when the name is taken, checked before the
// restaurant's own validation, or the Restaurant validation errors.
func (h OnboardRestaurantCommandHandler) Handle(ctx context.Context, cmd OnboardRestaurantCommand) error {
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

	_, err := restaurantRepo.Get(ctx, cmd.Name())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("restaurant", cmd.Name())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	r, err := restaurant.NewRestaurant(cmd.Name(), cmd.MaxOrders(), cmd.Rating())
	if err != nil {
		return err
	}

	if err = restaurantRepo.Add(ctx, r); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Restaurant onboarded",
		"restaurant", r.Name(),
		"max_orders", r.MaxOrders(),
		"rating", r.Rating().Float64(),
	)
	return nil
}
