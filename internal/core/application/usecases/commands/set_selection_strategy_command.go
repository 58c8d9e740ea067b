package commands

import (
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrSetSelectionStrategyCommandIsNotConstructed = errors.New(
	"SetSelectionStrategyCommand must be created via NewSetSelectionStrategyCommand constructor",
)

// SetSelectionStrategyCommand replaces the default selection strategy used by
// orders that do not name one.
type SetSelectionStrategyCommand struct { //nolint:recvcheck //using for validation
	strategy services.SelectionStrategy

	guard guard.ConstructorGuard
}

// NewSetSelectionStrategyCommand creates the command.
// Returns services.ErrStrategyIsRequired when strategy is nil.
func NewSetSelectionStrategyCommand(strategy services.SelectionStrategy) (SetSelectionStrategyCommand, error) {
	if strategy == nil {
		return SetSelectionStrategyCommand{}, services.ErrStrategyIsRequired
	}

	return SetSelectionStrategyCommand{
		strategy: strategy,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSelectionStrategyCommand) Validate() error {
	return c.guard.Validate(ErrSetSelectionStrategyCommandIsNotConstructed)
}

func (c SetSelectionStrategyCommand) Strategy() services.SelectionStrategy {
	return c.strategy
}
