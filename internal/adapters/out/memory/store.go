// Package memory provides the in-process storage of the dispatch system: a
// Store holding every restaurant and order, repositories over it and a Unit of
// Work that serialises access to it.
//
// Key Features:
//   - Restaurants kept in insertion order, orders kept in id order
//   - Order id sequence owned by the Store, starting at 1 for every new Store
//   - One transaction at a time; Begin blocks until the store is free or ctx ends
//   - Added aggregates become visible on Commit and are dropped on Rollback
//
// Usage Patterns:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.RestaurantRepository().Add(ctx, r); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Aggregates already stored are shared by pointer. Their domain methods are
// all-or-nothing, and a use case that fails after a successful domain call
// undoes it before rolling back.
package memory

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
)

// Store is the process-lifetime state of one dispatch system.
type Store struct {
	// sem is a one slot semaphore held by the active transaction
	sem chan struct{}

	restaurants       []*restaurant.Restaurant
	restaurantsByName map[string]*restaurant.Restaurant

	orders      []*order.Order
	ordersByID  map[int]*order.Order
	lastOrderID int
}

// NewStore creates an empty store whose first order id will be 1.
func NewStore() *Store {
	return &Store{
		sem:               make(chan struct{}, 1),
		restaurantsByName: make(map[string]*restaurant.Restaurant),
		ordersByID:        make(map[int]*order.Order),
	}
}

func (s *Store) lock(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlock() {
	<-s.sem
}
