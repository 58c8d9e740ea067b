package commands

import (
	"errors"
	"maps"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request for menu items.
// The customer and items are validated up front, so an invalid request never
// consumes an order id.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "Ashwin",
//	    map[string]int{"Idli": 3, "Dosa": 1}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoEligibleRestaurant) {
//	    fmt.Printf("order %d was rejected\n", placed.ID)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	customer  string
	items     map[string]int
	strategy  services.SelectionStrategy

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
//
// Parameters:
//   - requestID: Correlates the log lines of this request
//   - customer: Non-blank customer name
//   - items: Item name to positive quantity, non-empty; copied
//   - strategy: Selection strategy override, nil for the system default
func NewPlaceOrderCommand(
	requestID kernel.UUID,
	customer string,
	items map[string]int,
	strategy services.SelectionStrategy,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		strategy: strategy,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setRequest(customer, items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c PlaceOrderCommand) Customer() string {
	return c.customer
}

// Items returns a copy of the requested items.
func (c PlaceOrderCommand) Items() map[string]int {
	return maps.Clone(c.items)
}

// Strategy returns the override, nil when the default applies.
func (c PlaceOrderCommand) Strategy() services.SelectionStrategy {
	return c.strategy
}

func (c *PlaceOrderCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *PlaceOrderCommand) setRequest(customer string, items map[string]int) error {
	if err := order.ValidateRequest(customer, items); err != nil {
		return err
	}

	c.customer = customer
	c.items = maps.Clone(items)
	return nil
}
