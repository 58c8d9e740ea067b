package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/in/seed"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	strategies *services.StrategyRegistry
}

// NewCompositionRoot wires an empty ordering system. The configured default
// strategy must be one of the registered ones.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	strategies := services.NewStrategyRegistry()
	if err := strategies.SetDefaultByName(config.DefaultStrategy); err != nil {
		return nil, err
	}

	store := memory.NewStore()
	return &CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		strategies: strategies,
	}, nil
}

func (c *CompositionRoot) Strategies() *services.StrategyRegistry {
	return c.strategies
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) queryUoWFactory() queries.UoWFactory {
	return FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOnboardRestaurantCommandHandler() commands.OnboardRestaurantCommandHandler {
	return commands.NewOnboardRestaurantCommandHandler(c.restaurantUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.restaurantUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateMenuItemPriceCommandHandler() commands.UpdateMenuItemPriceCommandHandler {
	return commands.NewUpdateMenuItemPriceCommandHandler(c.restaurantUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.commandUoWFactory(), c.strategies, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCompleteNextOrderCommandHandler() commands.CompleteNextOrderCommandHandler {
	return commands.NewCompleteNextOrderCommandHandler(c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSetSelectionStrategyCommandHandler() commands.SetSelectionStrategyCommandHandler {
	return commands.NewSetSelectionStrategyCommandHandler(c.strategies, c.logger)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.queryUoWFactory())
}

// CreateOrderFeed replays the place_order steps of a seed file.
func (c *CompositionRoot) CreateOrderFeed(file seed.Seed) (*jobs.ScriptedOrderFeed, error) {
	steps := file.Orders()
	orders := make([]jobs.ScriptedOrder, 0, len(steps))
	for _, step := range steps {
		orders = append(orders, jobs.ScriptedOrder{
			Customer: step.Customer,
			Items:    step.Items,
			Strategy: step.Strategy,
		})
	}
	return jobs.NewScriptedOrderFeed(orders, c.strategies)
}

// CreateJobManager wires the simulation jobs around the given order feed.
func (c *CompositionRoot) CreateJobManager(feed jobs.OrderFeed) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCompleteNextOrderCommandHandler(),
		feed,
		jobs.Schedules{
			Placement:  c.config.PlacementSchedule,
			Completion: c.config.CompletionSchedule,
		},
		c.logger,
	)
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncQueryUoWFactory func() queries.UoW

func (f FuncQueryUoWFactory) Create() queries.UoW {
	return f()
}
