package queries_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() queries.UoW {
	return f.factory.Create()
}

type failingUoW struct {
	ports.UnitOfWork
}

func (failingUoW) Begin(context.Context) error {
	return errors.New("store unavailable")
}

type failingUoWFactory struct{}

func (failingUoWFactory) Create() queries.UoW {
	return failingUoW{}
}

func TestQueriesNotConstructedViaConstructor(t *testing.T) {
	_, err := queries.NewGetRestaurantsQueryHandler(failingUoWFactory{}).Handle(t.Context(), queries.GetRestaurantsQuery{})
	require.ErrorIs(t, err, queries.ErrGetRestaurantsQueryIsNotConstructed)

	_, err = queries.NewGetOrdersQueryHandler(failingUoWFactory{}).Handle(t.Context(), queries.GetOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(order.Status(42))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQueryHandlers_BeginError(t *testing.T) {
	_, err := queries.NewGetRestaurantsQueryHandler(failingUoWFactory{}).Handle(t.Context(), queries.NewGetRestaurantsQuery())
	require.EqualError(t, err, "store unavailable")

	query, err := queries.NewGetOrdersQuery()
	require.NoError(t, err)
	_, err = queries.NewGetOrdersQueryHandler(failingUoWFactory{}).Handle(t.Context(), query)
	require.EqualError(t, err, "store unavailable")
}

type QueriesTestSuite struct {
	suite.Suite
	factory memoryUoWFactory
	r1      *restaurant.Restaurant
	r2      *restaurant.Restaurant
}

func (suite *QueriesTestSuite) SetupTest() {
	ctx := suite.T().Context()
	store := memory.NewStore()
	suite.factory = memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}

	var err error
	suite.r1, err = restaurant.NewRestaurant("R1", 5, 4.5)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.r1.AddMenuItem("Veg Biryani", decimal.NewFromInt(100)))
	suite.Require().NoError(suite.r1.AddMenuItem("Chicken Biryani", decimal.NewFromInt(150)))

	suite.r2, err = restaurant.NewRestaurant("R2", 5, 4.0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.r2.AddMenuItem("Idli", decimal.NewFromInt(10)))

	uow := memory.NewUnitOfWorkFactory(store).Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, suite.r1))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, suite.r2))

	accepted, err := order.NewOrder(1, "Ashwin", map[string]int{"Idli": 3})
	suite.Require().NoError(err)
	suite.Require().NoError(accepted.AssignTo(suite.r2))

	rejected, err := order.NewOrder(2, "Diya", map[string]int{"Paneer Tikka": 1})
	suite.Require().NoError(err)
	rejected.MarkRejected()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, rejected))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, accepted))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesTestSuite) TestGetRestaurants() {
	handler := queries.NewGetRestaurantsQueryHandler(suite.factory)

	result, err := handler.Handle(suite.T().Context(), queries.NewGetRestaurantsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("R1", result[0].Name)
	suite.InDelta(4.5, result[0].Rating, 0)
	suite.Equal(0, result[0].CurrentOrders)
	suite.Require().Len(result[0].Menu, 2)
	suite.Equal("Chicken Biryani", result[0].Menu[0].Name)
	suite.True(result[0].Menu[0].Price.Equal(decimal.NewFromInt(150)))
	suite.Equal("Veg Biryani", result[0].Menu[1].Name)

	suite.Equal("R2", result[1].Name)
	suite.Equal(1, result[1].CurrentOrders)
	suite.Equal(5, result[1].MaxOrders)
}

func (suite *QueriesTestSuite) TestGetOrders_All() {
	query, err := queries.NewGetOrdersQuery()
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersQueryHandler(suite.factory).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(1, result[0].ID)
	suite.Equal(order.Accepted, result[0].Status)
	suite.Equal("R2", result[0].Restaurant)
	suite.True(result[0].HasTotal)
	suite.True(result[0].TotalCost.Equal(decimal.NewFromInt(30)))

	suite.Equal(2, result[1].ID)
	suite.Equal(order.Rejected, result[1].Status)
	suite.Empty(result[1].Restaurant)
	suite.False(result[1].HasTotal)
}

func (suite *QueriesTestSuite) TestGetOrders_ByStatus() {
	query, err := queries.NewGetOrdersQuery(order.Rejected)
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersQueryHandler(suite.factory).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Diya", result[0].Customer)
	assert.Equal(suite.T(), map[string]int{"Paneer Tikka": 1}, result[0].Items)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
