package memory

import (
	"context"

	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
)

// RestaurantRepository implements ports.RestaurantRepository inside a UnitOfWork.
type RestaurantRepository struct {
	uow *UnitOfWork
}

// Add stages a new restaurant.
func (r *RestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.Get(ctx, aggregate.Name()); err == nil {
		return errs.NewObjectAlreadyExistsError("restaurant", aggregate.Name())
	}

	r.uow.stagedRestaurants = append(r.uow.stagedRestaurants, aggregate)
	return nil
}

// Update checks that the restaurant is known. Stored restaurants are shared by
// pointer, so there is nothing else to write.
func (r *RestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, err := r.Get(ctx, aggregate.Name())
	return err
}

// Get retrieves a restaurant by name, staged ones included.
func (r *RestaurantRepository) Get(_ context.Context, name string) (*restaurant.Restaurant, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	if found, ok := r.uow.store.restaurantsByName[name]; ok {
		return found, nil
	}
	for _, staged := range r.uow.stagedRestaurants {
		if staged.Name() == name {
			return staged, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("restaurant", name)
}

// GetAll retrieves every restaurant in insertion order, staged ones last.
func (r *RestaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	all := make([]*restaurant.Restaurant, 0, len(r.uow.store.restaurants)+len(r.uow.stagedRestaurants))
	all = append(all, r.uow.store.restaurants...)
	all = append(all, r.uow.stagedRestaurants...)
	return all, nil
}
