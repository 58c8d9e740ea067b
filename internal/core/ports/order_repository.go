package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// Orders are never deleted; rejected orders are kept like any other.
type OrderRepository interface {
	// NextID reserves the next order id. Ids start at 1 and strictly increase
	// in reservation order.
	NextID(ctx context.Context) (int, error)

	// Add stores a new order.
	// Returns *errs.ObjectAlreadyExistsError if an order with the same id exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Returns *errs.ObjectNotFoundError if the order was never added.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns *errs.ObjectNotFoundError if there is no such order.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves every order in id order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetFirstInAcceptedStatus retrieves the oldest order in Accepted status.
	// Used by the completion workflow to free restaurant capacity.
	// Returns *errs.ObjectNotFoundError if no order is Accepted.
	GetFirstInAcceptedStatus(ctx context.Context) (*order.Order, error)
}
