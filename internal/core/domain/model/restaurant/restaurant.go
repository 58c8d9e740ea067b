package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("restaurant name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrCapacityExceeded is returned by AcceptOrder when the restaurant already
	// holds maxOrders accepted orders.
	ErrCapacityExceeded = errors.New("restaurant has reached maximum order capacity")
	// ErrNoOrdersToComplete is the cause of the state error returned by
	// CompleteOrder when no accepted order is being held.
	ErrNoOrdersToComplete = errors.New("no orders to complete")
)

// Restaurant is the aggregate root that owns a menu and a bounded number of
// concurrently accepted orders.
//
// Key responsibilities:
//   - Managing the menu (add, overwrite, reprice items)
//   - Answering eligibility questions for an order (HasAllItems, CanAcceptOrder)
//   - Pricing an order against the current menu (CalculateTotalCost)
//   - Tracking capacity consumption (AcceptOrder, CompleteOrder)
//
// Business rules:
//   - Name is non-blank and never changes after construction
//   - maxOrders is positive; rating is within [0, 5]
//   - 0 <= CurrentOrderCount() <= MaxOrders() at all times
//   - The menu is owned exclusively; callers only ever see copies
//
// Example usage:
//
//	r, err := NewRestaurant("R2", 5, 4.0)
//	if err != nil {
//	    // Handle validation error
//	}
//	_ = r.AddMenuItem("Idli", decimal.NewFromInt(10))
//	if r.HasAllItems(items) && r.CanAcceptOrder() {
//	    total := r.CalculateTotalCost(items)
//	    _ = r.AcceptOrder()
//	}
type Restaurant struct {
	// name uniquely identifies the restaurant within the system
	name string
	// maxOrders is the number of accepted orders the restaurant can hold at once
	maxOrders int
	// rating is the customer score used by rating based selection
	rating kernel.Rating
	// menu maps item name to the item
	menu map[string]*MenuItem
	// currentOrderCount is the number of accepted, not yet completed orders
	currentOrderCount int
	// guard ensures the restaurant was properly constructed
	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with an empty menu and no orders.
//
// Parameters:
//   - name: Unique restaurant name (must be non-blank)
//   - maxOrders: Capacity, the number of orders held simultaneously (must be positive)
//   - rating: Customer score (must be within [0, 5])
//
// Returns:
//   - *Restaurant: The created restaurant
//   - error: Validation errors for every invalid parameter, joined
func NewRestaurant(name string, maxOrders int, rating float64) (*Restaurant, error) {
	r := &Restaurant{
		menu:  make(map[string]*MenuItem),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setMaxOrders(maxOrders),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Restaurant was properly constructed using NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares restaurants by name.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.name == other.name
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) MaxOrders() int {
	return r.maxOrders
}

func (r *Restaurant) Rating() kernel.Rating {
	return r.rating
}

// CurrentOrderCount returns the number of accepted orders not yet completed.
func (r *Restaurant) CurrentOrderCount() int {
	return r.currentOrderCount
}

// Menu returns a snapshot of the menu. Changing the returned map or its
// values has no effect on the restaurant.
func (r *Restaurant) Menu() map[string]MenuItem {
	out := make(map[string]MenuItem, len(r.menu))
	for name, item := range r.menu {
		out[name] = *item
	}
	return out
}

// AddMenuItem inserts an item, replacing any existing item with the same name.
//
// Returns the MenuItem validation errors; the menu is untouched on error.
func (r *Restaurant) AddMenuItem(name string, price decimal.Decimal) error {
	item, err := NewMenuItem(name, price)
	if err != nil {
		return err
	}

	r.menu[name] = item
	return nil
}

// UpdateMenuItemPrice reprices an existing item.
//
// Returns:
//   - *errs.ObjectNotFoundError if the item is not on the menu
//   - a validation error if the price is not strictly positive
func (r *Restaurant) UpdateMenuItemPrice(name string, price decimal.Decimal) error {
	item, ok := r.menu[name]
	if !ok {
		return errs.NewObjectNotFoundError("menu item", name)
	}

	return item.SetPrice(price)
}

// HasAllItems reports whether every requested item is on the menu.
// Quantities are ignored.
func (r *Restaurant) HasAllItems(items map[string]int) bool {
	for name := range items {
		if _, ok := r.menu[name]; !ok {
			return false
		}
	}
	return true
}

// CalculateTotalCost returns the sum of price * quantity over items.
//
// Every item must be on the menu; callers check HasAllItems first. A missing
// item is a programming error and panics.
func (r *Restaurant) CalculateTotalCost(items map[string]int) decimal.Decimal {
	total := decimal.Zero
	for name, quantity := range items {
		item, ok := r.menu[name]
		if !ok {
			panic(fmt.Sprintf("restaurant %q: CalculateTotalCost called with unknown item %q", r.name, name))
		}
		total = total.Add(item.Price().Times(quantity))
	}
	return total
}

// CanAcceptOrder reports whether there is spare capacity.
func (r *Restaurant) CanAcceptOrder() bool {
	return r.currentOrderCount < r.maxOrders
}

// AcceptOrder takes one unit of capacity.
//
// Returns an error wrapping ErrCapacityExceeded, and leaves the counter
// unchanged, when the restaurant is full.
func (r *Restaurant) AcceptOrder() error {
	if !r.CanAcceptOrder() {
		return fmt.Errorf("%w: %s holds %d of %d orders", ErrCapacityExceeded, r.name, r.currentOrderCount, r.maxOrders)
	}

	r.currentOrderCount++
	return nil
}

// CompleteOrder releases one unit of capacity.
//
// Returns a *errs.StateIsInvalidError when no order is being held.
func (r *Restaurant) CompleteOrder() error {
	if r.currentOrderCount <= 0 {
		return errs.NewStateIsInvalidErrorWithCause("order count", ErrNoOrdersToComplete)
	}

	r.currentOrderCount--
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Restaurant) setMaxOrders(maxOrders int) error {
	if maxOrders <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max orders is invalid",
			fmt.Errorf("%d is not greater than 0", maxOrders),
		)
	}

	r.maxOrders = maxOrders
	return nil
}

func (r *Restaurant) setRating(rating float64) error {
	value, err := kernel.NewRating(rating)
	if err != nil {
		return err
	}

	r.rating = value
	return nil
}
