package order

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerIsRequired is returned when the customer name is blank.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	// ErrItemsAreRequired is returned when an order requests no items at all.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a customer request for menu items. It is the aggregate root that
// manages the order lifecycle from placement through acceptance to completion, or
// rejection when no restaurant can take it.
//
// Order follows these invariants:
//   - id is positive and never changes
//   - customer is non-blank
//   - items is a non-empty snapshot of the request, every quantity positive
//   - restaurant and total cost are set together, exactly when the order is accepted
//   - Can only be created through NewOrder constructor
type Order struct {
	// id is the sequence number assigned by the ordering system
	id int

	// customer is the name of whoever placed the order
	customer string

	// items maps menu item name to requested quantity
	items map[string]int

	// status represents the current state in the order lifecycle
	status Status

	// restaurant is the restaurant that accepted the order (nil until accepted).
	// The order does not own it.
	restaurant *restaurant.Restaurant

	// totalCost is the price of the order at the accepting restaurant (nil until accepted)
	totalCost *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order.
//
// Parameters:
//   - id: Sequence number, must be positive
//   - customer: Customer name, must be non-blank
//   - items: Item name to quantity, must be non-empty with positive quantities.
//     The map is copied; later changes by the caller do not affect the order.
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation errors for every invalid parameter, joined
//
// Example:
//
//	o, err := NewOrder(1, "Ashwin", map[string]int{"Idli": 3, "Dosa": 1})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int, customer string, items map[string]int) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// ValidateRequest checks customer and items the same way NewOrder does, without
// needing an id. Callers that allocate ids use it to avoid spending one on a
// request that cannot become an order.
func ValidateRequest(customer string, items map[string]int) error {
	o := &Order{}
	return errors.Join(o.setCustomer(customer), o.setItems(items))
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's sequence number.
func (o *Order) ID() int {
	return o.id
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the requested items.
func (o *Order) Items() map[string]int {
	return maps.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Restaurant returns the restaurant that accepted the order, nil while the order
// was never accepted.
func (o *Order) Restaurant() *restaurant.Restaurant {
	return o.restaurant
}

// RestaurantName returns the accepting restaurant's name, or "" when there is none.
func (o *Order) RestaurantName() string {
	if o.restaurant == nil {
		return ""
	}
	return o.restaurant.Name()
}

// TotalCost returns the order total and true once the order was accepted.
func (o *Order) TotalCost() (decimal.Decimal, bool) {
	if o.totalCost == nil {
		return decimal.Zero, false
	}
	return *o.totalCost, true
}

// AssignTo hands the order to r.
//
// The assignment is all-or-nothing: the status transition is checked, the total is
// priced against r's menu and r takes one unit of capacity. Only when every step
// succeeds does the order record Accepted, r and the total. On error neither the
// order nor r is changed.
//
// Returns:
//   - *errs.StateIsInvalidError if the order is not Pending
//   - *errs.ValueIsInvalidError if r does not offer every requested item
//   - an error wrapping restaurant.ErrCapacityExceeded if r is full
func (o *Order) AssignTo(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	if !r.HasAllItems(o.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurant is invalid",
			fmt.Errorf("%s does not offer every item of order %d", r.Name(), o.id),
		)
	}

	total := r.CalculateTotalCost(o.items)
	if err := r.AcceptOrder(); err != nil {
		return err
	}

	o.status = newStatus
	o.restaurant = r
	o.totalCost = &total
	return nil
}

// MarkCompleted moves an Accepted order to Completed and frees the capacity it
// held at its restaurant.
//
// Returns a *errs.StateIsInvalidError, leaving the order unchanged, unless the
// order is Accepted.
func (o *Order) MarkCompleted() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if o.restaurant != nil {
		if err := o.restaurant.CompleteOrder(); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

// MarkRejected sets the order to Rejected from any status. Rejecting twice is a no-op.
func (o *Order) MarkRejected() {
	o.status = o.status.Reject()
}

func (o *Order) setID(id int) error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items map[string]int) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var problems []error
	for name, quantity := range items {
		if quantity <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("%s: %d is not greater than 0", name, quantity),
			))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	o.items = maps.Clone(items)
	return nil
}
