package services

import (
	"errors"
	"slices"
	"sync"

	"dispatch/internal/pkg/errs"
)

// ErrStrategyIsRequired is returned when a nil strategy is registered or made the default.
var ErrStrategyIsRequired = errs.NewValueIsRequiredError("selection strategy")

// StrategyRegistry holds the selection strategies known by name and the
// process-wide default used when an order names no strategy.
//
// It is safe for concurrent use.
type StrategyRegistry struct {
	mu         sync.RWMutex
	strategies map[string]SelectionStrategy
	current    SelectionStrategy
}

// NewStrategyRegistry returns a registry holding the built-in strategies with
// LowestCostStrategy as the default.
func NewStrategyRegistry() *StrategyRegistry {
	lowestCost := LowestCostStrategy{}
	highestRating := HighestRatingStrategy{}

	return &StrategyRegistry{
		strategies: map[string]SelectionStrategy{
			lowestCost.Name():    lowestCost,
			highestRating.Name(): highestRating,
		},
		current: lowestCost,
	}
}

// Register adds a strategy under its name.
//
// Returns:
//   - ErrStrategyIsRequired if s is nil
//   - *errs.ObjectAlreadyExistsError if the name is taken
func (r *StrategyRegistry) Register(s SelectionStrategy) error {
	if s == nil {
		return ErrStrategyIsRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[s.Name()]; exists {
		return errs.NewObjectAlreadyExistsError("selection strategy", s.Name())
	}
	r.strategies[s.Name()] = s
	return nil
}

// Get returns the strategy registered under name, or a *errs.ObjectNotFoundError.
func (r *StrategyRegistry) Get(name string) (SelectionStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.strategies[name]
	if !exists {
		return nil, errs.NewObjectNotFoundError("selection strategy", name)
	}
	return s, nil
}

// Default returns the current default strategy.
func (r *StrategyRegistry) Default() SelectionStrategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current
}

// SetDefault replaces the default strategy. A strategy that is not registered yet
// is registered under its name.
//
// Returns ErrStrategyIsRequired if s is nil; the default is unchanged then.
func (r *StrategyRegistry) SetDefault(s SelectionStrategy) error {
	if s == nil {
		return ErrStrategyIsRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[s.Name()]; !exists {
		r.strategies[s.Name()] = s
	}
	r.current = s
	return nil
}

// SetDefaultByName makes the registered strategy called name the default.
func (r *StrategyRegistry) SetDefaultByName(name string) error {
	s, err := r.Get(name)
	if err != nil {
		return errors.Join(errs.NewValueIsInvalidError("selection strategy"), err)
	}
	return r.SetDefault(s)
}

// Names returns the registered strategy names in sorted order.
func (r *StrategyRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
