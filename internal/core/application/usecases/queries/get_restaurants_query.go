package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery lists all restaurants in onboarding order.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query to retrieve all restaurants.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// MenuItemResponse is a menu entry in the read model.
type MenuItemResponse struct {
	Name  string
	Price decimal.Decimal
}

// RestaurantResponse is the read model of a restaurant.
// Menu is sorted by item name.
//
// Example:
//
//	RestaurantResponse{Name: "R1", MaxOrders: 5, CurrentOrders: 2, Rating: 4.5}
type RestaurantResponse struct {
	Name          string
	MaxOrders     int
	CurrentOrders int
	Rating        float64
	Menu          []MenuItemResponse
}
