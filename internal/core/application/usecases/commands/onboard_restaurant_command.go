package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrOnboardRestaurantCommandIsNotConstructed = errors.New(
		"OnboardRestaurantCommand must be created via NewOnboardRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("restaurant name")
)

// OnboardRestaurantCommand represents a request to register a new restaurant.
// Capacity and rating are checked by the Restaurant aggregate itself.
//
// Example:
//
//	cmd, err := NewOnboardRestaurantCommand("R1", 5, 4.5)
//	if err != nil {
//	    return fmt.Errorf("invalid restaurant data: %w", err)
//	}
//
//	handler := NewOnboardRestaurantCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to onboard restaurant: %w", err)
//	}
type OnboardRestaurantCommand struct { //nolint:recvcheck //using for validation
	name      string
	maxOrders int
	rating    float64

	guard guard.ConstructorGuard
}

// NewOnboardRestaurantCommand creates a command to onboard a restaurant.
// Returns an error if the name is blank.
func NewOnboardRestaurantCommand(name string, maxOrders int, rating float64) (OnboardRestaurantCommand, error) {
	cmd := OnboardRestaurantCommand{
		maxOrders: maxOrders,
		rating:    rating,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return OnboardRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OnboardRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrOnboardRestaurantCommandIsNotConstructed)
}

func (c OnboardRestaurantCommand) Name() string {
	return c.name
}

func (c OnboardRestaurantCommand) MaxOrders() int {
	return c.maxOrders
}

func (c OnboardRestaurantCommand) Rating() float64 {
	return c.rating
}

func (c *OnboardRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}
