package queries

import (
	"cmp"
	"context"
	"slices"
)

// GetRestaurantsQueryHandler projects restaurants into read models.
//
// Example:
//
//	handler := NewGetRestaurantsQueryHandler(uowFactory)
//	restaurants, err := handler.Handle(ctx, NewGetRestaurantsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, r := range restaurants {
//	    fmt.Printf("%s - Orders: %d/%d\n", r.Name, r.CurrentOrders, r.MaxOrders)
//	}
type GetRestaurantsQueryHandler struct {
	uowFactory UoWFactory
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listing.
func NewGetRestaurantsQueryHandler(uowFactory UoWFactory) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		menu := make([]MenuItemResponse, 0)
		for name, item := range r.Menu() {
			menu = append(menu, MenuItemResponse{Name: name, Price: item.Price().Amount()})
		}
		slices.SortFunc(menu, func(a, b MenuItemResponse) int { return cmp.Compare(a.Name, b.Name) })

		result = append(result, RestaurantResponse{
			Name:          r.Name(),
			MaxOrders:     r.MaxOrders(),
			CurrentOrders: r.CurrentOrderCount(),
			Rating:        r.Rating().Float64(),
			Menu:          menu,
		})
	}

	return result, nil
}
