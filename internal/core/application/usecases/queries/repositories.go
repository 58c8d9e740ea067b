// Package queries contains read operations for retrieving system state.
// Queries open a unit of work, read through its repositories and always roll
// back, so they never change the store.
package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// UoW is the read-only view of a unit of work the queries need.
type UoW interface {
	Begin(ctx context.Context) error
	Rollback(ctx context.Context) error
	RestaurantRepository() ports.RestaurantRepository
	OrderRepository() ports.OrderRepository
}

// UoWFactory creates units of work for query handlers.
type UoWFactory interface {
	Create() UoW
}
