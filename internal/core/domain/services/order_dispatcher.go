package services

import (
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
)

var (
	// ErrNoEligibleRestaurant is returned when no restaurant offers every requested
	// item while having spare capacity.
	ErrNoEligibleRestaurant = errors.New("no eligible restaurant found")

	// ErrRestaurantNotSelected is returned when the selection strategy chose none of
	// the eligible restaurants, or chose a restaurant that is not eligible.
	ErrRestaurantNotSelected = errors.New("selection strategy did not select a restaurant")
)

// OrderDispatcher is a domain service responsible for finding and assigning a
// restaurant for a pending order using a pluggable SelectionStrategy.
//
// Key responsibilities:
//   - Filtering restaurants down to the eligible ones
//   - Delegating the choice among them to the strategy
//   - Assigning the order to the chosen restaurant
//
// Business rules:
//   - A restaurant is eligible when it offers every requested item and has spare capacity
//   - Candidates keep the order in which restaurants were given
//   - The dispatcher never rejects the order itself; that is left to the caller
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	chosen, err := dispatcher.Dispatch(o, restaurants, LowestCostStrategy{})
//	if errors.Is(err, ErrNoEligibleRestaurant) {
//	    o.MarkRejected()
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects a restaurant for o and assigns o to it.
//
// Parameters:
//   - o: A Pending order
//   - restaurants: Every known restaurant, in a stable order
//   - strategy: The policy choosing among eligible restaurants (must not be nil)
//
// Returns:
//   - *restaurant.Restaurant: The restaurant that accepted the order
//   - error: ErrNoEligibleRestaurant, ErrRestaurantNotSelected, ErrStrategyIsRequired,
//     or the assignment error from order.AssignTo
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	restaurants []*restaurant.Restaurant,
	strategy SelectionStrategy,
) (*restaurant.Restaurant, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if strategy == nil {
		return nil, ErrStrategyIsRequired
	}

	items := o.Items()
	candidates, err := d.EligibleRestaurants(restaurants, items)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, ErrNoEligibleRestaurant
	}

	chosen := strategy.Select(candidates, items)
	if chosen == nil || !slices.Contains(candidates, chosen) {
		return nil, ErrRestaurantNotSelected
	}

	if err := o.AssignTo(chosen); err != nil {
		return nil, err
	}

	return chosen, nil
}

// EligibleRestaurants returns the restaurants that offer every item and can take
// another order, keeping their relative order.
func (d OrderDispatcher) EligibleRestaurants(
	restaurants []*restaurant.Restaurant,
	items map[string]int,
) ([]*restaurant.Restaurant, error) {
	candidates := make([]*restaurant.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if r.HasAllItems(items) && r.CanAcceptOrder() {
			candidates = append(candidates, r)
		}
	}
	return candidates, nil
}
