package restaurant

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemNameIsRequired is returned when a menu item name is empty or blank.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("menu item name")
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a dish a restaurant offers. Its name is its identity and never
// changes; the price can be updated through SetPrice.
type MenuItem struct {
	name  string
	price kernel.Price
	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item.
//
// Returns a validation error when the name is blank or the price is not
// strictly positive. Both problems are reported together when both apply.
//
// Example:
//
//	item, err := NewMenuItem("Veg Biryani", decimal.NewFromInt(100))
func NewMenuItem(name string, price decimal.Decimal) (*MenuItem, error) {
	item := &MenuItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the item was created by NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares menu items by name only.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.name == other.name
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Price() kernel.Price {
	return m.price
}

// SetPrice replaces the price. On a validation error the old price is kept.
func (m *MenuItem) SetPrice(price decimal.Decimal) error {
	p, err := kernel.NewPrice(price)
	if err != nil {
		return err
	}

	m.price = p
	return nil
}

func (m *MenuItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}

	m.name = name
	return nil
}
