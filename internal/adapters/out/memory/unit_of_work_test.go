package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// UnitOfWorkTestSuite exercises the in-memory unit of work together with the
// repositories it hands out.
type UnitOfWorkTestSuite struct {
	suite.Suite
	store   *memory.Store
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.factory = memory.NewUnitOfWorkFactory(suite.store)
}

func (suite *UnitOfWorkTestSuite) begin() ports.UnitOfWork {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.T().Context()))
	return uow
}

func (suite *UnitOfWorkTestSuite) newRestaurant(name string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(name, 5, 4.0)
	suite.Require().NoError(err)
	suite.Require().NoError(r.AddMenuItem("Idli", decimal.NewFromInt(10)))
	return r
}

func (suite *UnitOfWorkTestSuite) newOrder(id int) *order.Order {
	o, err := order.NewOrder(id, "Ashwin", map[string]int{"Idli": 1})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkTestSuite) TestCommit_PublishesRestaurantsInInsertionOrder() {
	ctx := suite.T().Context()

	uow := suite.begin()
	for _, name := range []string{"R3", "R1", "R2"} {
		suite.Require().NoError(uow.RestaurantRepository().Add(ctx, suite.newRestaurant(name)))
	}
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.begin()
	defer reader.Rollback(ctx)
	all, err := reader.RestaurantRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("R3", all[0].Name())
	suite.Equal("R1", all[1].Name())
	suite.Equal("R2", all[2].Name())
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsStagedAggregates() {
	ctx := suite.T().Context()

	uow := suite.begin()
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, suite.newRestaurant("R1")))
	id, err := uow.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(id)))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.begin()
	defer reader.Rollback(ctx)
	_, err = reader.RestaurantRepository().Get(ctx, "R1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	orders, err := reader.OrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)

	nextID, err := reader.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, nextID, "rolled back id is handed out again")
}

func (suite *UnitOfWorkTestSuite) TestStagedAggregatesAreVisibleInsideTransaction() {
	ctx := suite.T().Context()

	uow := suite.begin()
	defer uow.Rollback(ctx)
	r := suite.newRestaurant("R1")
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))

	found, err := uow.RestaurantRepository().Get(ctx, "R1")
	suite.Require().NoError(err)
	suite.Same(r, found)
	suite.Require().NoError(uow.RestaurantRepository().Update(ctx, r))
}

func (suite *UnitOfWorkTestSuite) TestRestaurantAdd_DuplicateName() {
	ctx := suite.T().Context()

	uow := suite.begin()
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, suite.newRestaurant("R1")))
	err := uow.RestaurantRepository().Add(ctx, suite.newRestaurant("R1"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(uow.Commit(ctx))

	again := suite.begin()
	defer again.Rollback(ctx)
	err = again.RestaurantRepository().Add(ctx, suite.newRestaurant("R1"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *UnitOfWorkTestSuite) TestRestaurantAdd_RejectsUnconstructed() {
	ctx := suite.T().Context()

	uow := suite.begin()
	defer uow.Rollback(ctx)

	err := uow.RestaurantRepository().Add(ctx, &restaurant.Restaurant{})
	suite.Require().ErrorIs(err, restaurant.ErrRestaurantIsNotConstructed)
}

func (suite *UnitOfWorkTestSuite) TestRestaurantUpdate_Unknown() {
	ctx := suite.T().Context()

	uow := suite.begin()
	defer uow.Rollback(ctx)

	err := uow.RestaurantRepository().Update(ctx, suite.newRestaurant("Ghost"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestNextID_StartsAtOneAndIncreasesAcrossTransactions() {
	ctx := suite.T().Context()

	var ids []int
	for range 3 {
		uow := suite.begin()
		id, err := uow.OrderRepository().NextID(ctx)
		suite.Require().NoError(err)
		suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(id)))
		suite.Require().NoError(uow.Commit(ctx))
		ids = append(ids, id)
	}

	suite.Equal([]int{1, 2, 3}, ids)
}

func (suite *UnitOfWorkTestSuite) TestNextID_IsPerStore() {
	ctx := suite.T().Context()

	first := suite.begin()
	_, _ = first.OrderRepository().NextID(ctx)
	suite.Require().NoError(first.Commit(ctx))

	other := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	suite.Require().NoError(other.Begin(ctx))
	defer other.Rollback(ctx)
	id, err := other.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, id)
}

func (suite *UnitOfWorkTestSuite) TestOrderRepository_GetAndQueries() {
	ctx := suite.T().Context()
	r := suite.newRestaurant("R1")

	uow := suite.begin()
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	orders := make([]*order.Order, 0, 3)
	for range 3 {
		id, err := uow.OrderRepository().NextID(ctx)
		suite.Require().NoError(err)
		o := suite.newOrder(id)
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
		orders = append(orders, o)
	}
	orders[0].MarkRejected()
	suite.Require().NoError(orders[1].AssignTo(r))
	suite.Require().NoError(orders[2].AssignTo(r))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.begin()
	defer reader.Rollback(ctx)
	repo := reader.OrderRepository()

	found, err := repo.Get(ctx, 2)
	suite.Require().NoError(err)
	suite.Same(orders[1], found)

	_, err = repo.Get(ctx, 99)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	first, err := repo.GetFirstInAcceptedStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(2, first.ID())

	all, err := repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(order.Rejected, all[0].Status())

	suite.Require().NoError(repo.Update(ctx, orders[0]))
	suite.Require().ErrorIs(repo.Add(ctx, suite.newOrder(1)), errs.ErrObjectAlreadyExists)
}

func (suite *UnitOfWorkTestSuite) TestGetFirstInAcceptedStatus_None() {
	ctx := suite.T().Context()

	uow := suite.begin()
	defer uow.Rollback(ctx)

	_, err := uow.OrderRepository().GetFirstInAcceptedStatus(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestOperationsOutsideTransactionFail() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), memory.ErrTransactionIsNotActive)
	suite.Require().ErrorIs(uow.Rollback(ctx), memory.ErrTransactionIsNotActive)
	_, err := uow.RestaurantRepository().GetAll(ctx)
	suite.Require().ErrorIs(err, memory.ErrTransactionIsNotActive)
	_, err = uow.OrderRepository().NextID(ctx)
	suite.Require().ErrorIs(err, memory.ErrTransactionIsNotActive)
}

func (suite *UnitOfWorkTestSuite) TestRollbackAfterCommitIsHarmless() {
	ctx := suite.T().Context()

	uow := suite.begin()
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), memory.ErrTransactionIsNotActive)

	// the store must be free again
	next := suite.begin()
	suite.Require().NoError(next.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestBeginTwiceIsNoop() {
	ctx := suite.T().Context()

	uow := suite.begin()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	next := suite.begin()
	suite.Require().NoError(next.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestBegin_WaitsForActiveTransaction() {
	ctx := suite.T().Context()
	holder := suite.begin()

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := suite.factory.Create().Begin(waitCtx)
	suite.Require().ErrorIs(err, context.DeadlineExceeded)

	suite.Require().NoError(holder.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestConcurrentTransactionsDoNotOverbook() {
	ctx := suite.T().Context()
	r, err := restaurant.NewRestaurant("R3", 3, 4.9)
	suite.Require().NoError(err)
	suite.Require().NoError(r.AddMenuItem("Idli", decimal.NewFromInt(15)))

	setup := suite.begin()
	suite.Require().NoError(setup.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(setup.Commit(ctx))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			stored, err := uow.RestaurantRepository().Get(ctx, "R3")
			if err != nil || !stored.CanAcceptOrder() {
				return
			}
			id, _ := uow.OrderRepository().NextID(ctx)
			o, _ := order.NewOrder(id, "customer", map[string]int{"Idli": 1})
			if o.AssignTo(stored) != nil {
				return
			}
			_ = uow.OrderRepository().Add(ctx, o)
			if uow.Commit(ctx) == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	suite.Equal(3, accepted)
	suite.Equal(3, r.CurrentOrderCount())
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
