package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders by id, optionally narrowed to some statuses.
type GetOrdersQuery struct {
	statuses []order.Status
	guard    guard.ConstructorGuard
}

// NewGetOrdersQuery creates the query. With no statuses every order is returned.
func NewGetOrdersQuery(statuses ...order.Status) (GetOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		statuses: append([]order.Status(nil), statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) matches(s order.Status) bool {
	if len(q.statuses) == 0 {
		return true
	}
	for _, want := range q.statuses {
		if want == s {
			return true
		}
	}
	return false
}

// OrderResponse is the read model of an order.
// Restaurant is empty and HasTotal false until the order has been accepted.
type OrderResponse struct {
	ID         int
	Customer   string
	Items      map[string]int
	Status     order.Status
	Restaurant string
	TotalCost  decimal.Decimal
	HasTotal   bool
}
