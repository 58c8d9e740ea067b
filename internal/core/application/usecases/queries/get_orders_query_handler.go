package queries

import (
	"context"
)

// GetOrdersQueryHandler projects orders into read models, ordered by id.
type GetOrdersQueryHandler struct {
	uowFactory UoWFactory
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(uowFactory UoWFactory) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
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

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		if !query.matches(o.Status()) {
			continue
		}

		total, ok := o.TotalCost()
		result = append(result, OrderResponse{
			ID:         o.ID(),
			Customer:   o.Customer(),
			Items:      o.Items(),
			Status:     o.Status(),
			Restaurant: o.RestaurantName(),
			TotalCost:  total,
			HasTotal:   ok,
		})
	}

	return result, nil
}
