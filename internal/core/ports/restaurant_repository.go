// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the storage contract for restaurant aggregates.
// Restaurants are keyed by name and listed in the order they were added.
type RestaurantRepository interface {
	// Add stores a new restaurant.
	// Returns *errs.ObjectAlreadyExistsError if the name is already taken.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	// Returns *errs.ObjectNotFoundError if the restaurant was never added.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by name.
	// Returns *errs.ObjectNotFoundError if there is no such restaurant.
	Get(ctx context.Context, name string) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant in insertion order. The order is the
	// candidate order seen by selection strategies, so it must be stable.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
