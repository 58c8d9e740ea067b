package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateMenuItemPriceCommandIsNotConstructed = errors.New(
	"UpdateMenuItemPriceCommand must be created via NewUpdateMenuItemPriceCommand constructor",
)

// UpdateMenuItemPriceCommand reprices an item already on a restaurant's menu.
type UpdateMenuItemPriceCommand struct { //nolint:recvcheck //using for validation
	restaurantName string
	itemName       string
	price          decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemPriceCommand creates a command to reprice a menu item.
// The restaurant name must be non-blank.
func NewUpdateMenuItemPriceCommand(restaurantName, itemName string, price decimal.Decimal) (UpdateMenuItemPriceCommand, error) {
	cmd := UpdateMenuItemPriceCommand{
		itemName: itemName,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setRestaurantName(restaurantName); err != nil {
		return UpdateMenuItemPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemPriceCommandIsNotConstructed)
}

func (c UpdateMenuItemPriceCommand) RestaurantName() string {
	return c.restaurantName
}

func (c UpdateMenuItemPriceCommand) ItemName() string {
	return c.itemName
}

func (c UpdateMenuItemPriceCommand) Price() decimal.Decimal {
	return c.price
}

func (c *UpdateMenuItemPriceCommand) setRestaurantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = name
	return nil
}
