package memory

import (
	"cmp"
	"context"
	"slices"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository inside a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

// NextID reserves the next order id. The reservation is kept on Commit and
// given back on Rollback.
func (r *OrderRepository) NextID(_ context.Context) (int, error) {
	if err := r.uow.ensureActive(); err != nil {
		return 0, err
	}

	r.uow.lastOrderID++
	return r.uow.lastOrderID, nil
}

// Add stages a new order.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.Get(ctx, aggregate.ID()); err == nil {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
	}

	r.uow.stagedOrders = append(r.uow.stagedOrders, aggregate)
	return nil
}

// Update checks that the order is known. Stored orders are shared by pointer,
// so there is nothing else to write.
func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, err := r.Get(ctx, aggregate.ID())
	return err
}

// Get retrieves an order by id, staged ones included.
func (r *OrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	if found, ok := r.uow.store.ordersByID[id]; ok {
		return found, nil
	}
	for _, staged := range r.uow.stagedOrders {
		if staged.ID() == id {
			return staged, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order", id)
}

// GetAll retrieves every order in id order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	all := make([]*order.Order, 0, len(r.uow.store.orders)+len(r.uow.stagedOrders))
	all = append(all, r.uow.store.orders...)
	all = append(all, r.uow.stagedOrders...)
	slices.SortFunc(all, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return all, nil
}

// GetFirstInAcceptedStatus retrieves the lowest id order in Accepted status.
func (r *OrderRepository) GetFirstInAcceptedStatus(ctx context.Context) (*order.Order, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range all {
		if o.Status() == order.Accepted {
			return o, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order", "first in accepted status")
}
