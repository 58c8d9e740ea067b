package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// PlacedOrder describes the outcome of a placed order.
// Restaurant and TotalCost are empty unless Status is order.Accepted.
type PlacedOrder struct {
	ID         int
	Customer   string
	Status     order.Status
	Restaurant string
	TotalCost  decimal.Decimal
	Strategy   string
}

// PlaceOrderCommandHandler creates orders and dispatches them to restaurants.
//
// Every order it creates is stored exactly once, accepted or rejected, so the
// order list is a complete audit trail.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, registry, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoEligibleRestaurant):
//	    log.Printf("order %d rejected: nobody can cook it", placed.ID)
//	case err != nil:
//	    log.Printf("order failed: %v", err)
//	default:
//	    log.Printf("order %d accepted by %s", placed.ID, placed.Restaurant)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	strategies StrategyRegistry
	dispatcher services.OrderDispatcher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The registry supplies the default strategy when the command carries none.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, strategies StrategyRegistry, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		strategies: strategies,
		dispatcher: services.NewOrderDispatcher(),
		logger:     logger.With("component", "place_order"),
	}
}

// Handle places the order.
//
// The order gets the next id, then is dispatched among all restaurants in
// insertion order. If dispatching fails the order is marked Rejected; it is
// stored in both cases and the dispatch error is returned along with the
// PlacedOrder, so callers can still report the rejected order's id.
//
// Returns:
//   - services.ErrNoEligibleRestaurant if no restaurant can take the order
//   - services.ErrRestaurantNotSelected if the strategy chose nothing
//   - any unit of work or repository error, in which case nothing is stored
//     and the chosen restaurant gets its slot back
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlacedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return PlacedOrder{}, err
	}

	strategy := cmd.Strategy()
	if strategy == nil {
		strategy = h.strategies.Default()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlacedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	restaurantRepo := uow.RestaurantRepository()

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return PlacedOrder{}, err
	}

	o, err := order.NewOrder(id, cmd.Customer(), cmd.Items())
	if err != nil {
		return PlacedOrder{}, err
	}

	restaurants, err := restaurantRepo.GetAll(ctx)
	if err != nil {
		return PlacedOrder{}, err
	}

	// Restaurants are shared with the store, so a slot taken by an order that
	// never gets committed has to be released by hand.
	var held *restaurant.Restaurant
	defer func() {
		if held != nil {
			_ = held.CompleteOrder()
		}
	}()

	chosen, dispatchErr := h.dispatcher.Dispatch(o, restaurants, strategy)
	if dispatchErr != nil {
		o.MarkRejected()
	} else {
		held = chosen
		if err = restaurantRepo.Update(ctx, chosen); err != nil {
			return PlacedOrder{}, err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return PlacedOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlacedOrder{}, err
	}
	held = nil

	placed := toPlacedOrder(o, strategy)
	if dispatchErr != nil {
		h.logger.WarnContext(ctx, "Order rejected",
			"request_id", cmd.RequestID(),
			"order_id", placed.ID,
			"customer", placed.Customer,
			"strategy", placed.Strategy,
			"error", dispatchErr,
		)
		return placed, dispatchErr
	}

	h.logger.InfoContext(ctx, "Order assigned",
		"request_id", cmd.RequestID(),
		"order_id", placed.ID,
		"customer", placed.Customer,
		"restaurant", placed.Restaurant,
		"total", placed.TotalCost.String(),
		"strategy", placed.Strategy,
	)
	return placed, nil
}

func toPlacedOrder(o *order.Order, strategy services.SelectionStrategy) PlacedOrder {
	total, _ := o.TotalCost()
	return PlacedOrder{
		ID:         o.ID(),
		Customer:   o.Customer(),
		Status:     o.Status(),
		Restaurant: o.RestaurantName(),
		TotalCost:  total,
		Strategy:   strategy.Name(),
	}
}
