package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"
)

// ErrTransactionIsNotActive is returned by Commit, Rollback and every repository
// call made outside Begin/Commit.
var ErrTransactionIsNotActive = errors.New("transaction is not active")

// UnitOfWorkFactory creates UnitOfWork instances over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. It holds nothing until Begin.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is an exclusive transaction over a Store.
//
// Begin takes the store for this unit of work alone; Commit publishes staged
// aggregates and the advanced order id sequence, then releases the store.
// Rollback releases it and forgets everything staged.
type UnitOfWork struct {
	store  *Store
	active bool

	stagedRestaurants []*restaurant.Restaurant
	stagedOrders      []*order.Order
	lastOrderID       int
}

// Begin waits for exclusive access to the store. Calling Begin on an active
// unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.lock(ctx); err != nil {
		return err
	}

	uow.active = true
	uow.stagedRestaurants = nil
	uow.stagedOrders = nil
	uow.lastOrderID = uow.store.lastOrderID
	return nil
}

// Commit publishes the transaction and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	s := uow.store
	for _, r := range uow.stagedRestaurants {
		s.restaurants = append(s.restaurants, r)
		s.restaurantsByName[r.Name()] = r
	}
	for _, o := range uow.stagedOrders {
		s.orders = append(s.orders, o)
		s.ordersByID[o.ID()] = o
	}
	s.lastOrderID = uow.lastOrderID

	uow.finish()
	return nil
}

// Rollback discards everything staged and releases the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	uow.finish()
	return nil
}

// RestaurantRepository returns the restaurant repository of this unit of work.
func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{uow: uow}
}

// OrderRepository returns the order repository of this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.stagedRestaurants = nil
	uow.stagedOrders = nil
	uow.store.unlock()
}

func (uow *UnitOfWork) ensureActive() error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}
	return nil
}
