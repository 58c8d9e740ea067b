package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCompleteNextOrderCommandIsNotConstructed = errors.New(
	"CompleteNextOrderCommand must be created via NewCompleteNextOrderCommand constructor",
)

// CompleteNextOrderCommand completes the oldest accepted order.
// The simulation uses it to release restaurant capacity over time.
type CompleteNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteNextOrderCommand creates the parameterless command.
func NewCompleteNextOrderCommand() CompleteNextOrderCommand {
	return CompleteNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CompleteNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteNextOrderCommandIsNotConstructed)
}
