package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand adds an item to a restaurant's menu, replacing any item with
// the same name.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand("R1", "Chicken65", decimal.NewFromInt(250))
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantName string
	itemName       string
	price          decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// The restaurant name must be non-blank; the item itself is validated by the menu.
func NewAddMenuItemCommand(restaurantName, itemName string, price decimal.Decimal) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		itemName: itemName,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setRestaurantName(restaurantName); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) RestaurantName() string {
	return c.restaurantName
}

func (c AddMenuItemCommand) ItemName() string {
	return c.itemName
}

func (c AddMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

func (c *AddMenuItemCommand) setRestaurantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = name
	return nil
}
