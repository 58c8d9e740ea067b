package jobs

import (
	"context"
	"errors"
	"slices"
	"sync"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

var ErrOrderFeedIsEmpty = errors.New("order feed has no orders")

// OrderFeed supplies the orders the placement job submits.
type OrderFeed interface {
	Next(ctx context.Context) (commands.PlaceOrderCommand, error)
}

// StrategyLookup resolves strategy names used in scripted orders.
type StrategyLookup interface {
	Get(name string) (services.SelectionStrategy, error)
}

// ScriptedOrder is one order a ScriptedOrderFeed submits.
// An empty Strategy means the system default.
type ScriptedOrder struct {
	Customer string
	Items    map[string]int
	Strategy string
}

// ScriptedOrderFeed replays a fixed list of orders in a loop.
type ScriptedOrderFeed struct {
	mu         sync.Mutex
	orders     []ScriptedOrder
	strategies StrategyLookup
	next       int
}

// NewScriptedOrderFeed creates a feed over the given orders.
func NewScriptedOrderFeed(orders []ScriptedOrder, strategies StrategyLookup) (*ScriptedOrderFeed, error) {
	if len(orders) == 0 {
		return nil, ErrOrderFeedIsEmpty
	}

	return &ScriptedOrderFeed{
		orders:     slices.Clone(orders),
		strategies: strategies,
	}, nil
}

// Next builds the command for the next scripted order, wrapping around at the end.
func (f *ScriptedOrderFeed) Next(_ context.Context) (commands.PlaceOrderCommand, error) {
	f.mu.Lock()
	scripted := f.orders[f.next]
	f.next = (f.next + 1) % len(f.orders)
	f.mu.Unlock()

	var strategy services.SelectionStrategy
	if scripted.Strategy != "" {
		s, err := f.strategies.Get(scripted.Strategy)
		if err != nil {
			return commands.PlaceOrderCommand{}, err
		}
		strategy = s
	}

	return commands.NewPlaceOrderCommand(kernel.NewUUID(), scripted.Customer, scripted.Items, strategy)
}
