package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a zero Price is used.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

// Price is a strictly positive monetary amount of a single menu item.
// It is immutable; arithmetic returns plain decimals.
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice validates that amount is greater than zero.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewPriceFromString parses a decimal literal such as "12.50".
func NewPriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price is invalid", err)
	}
	return NewPrice(d)
}

// MustNewPrice is NewPrice for literals known to be valid. It panics otherwise.
func MustNewPrice(amount string) Price {
	p, err := NewPriceFromString(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate fails for a Price that was not built by NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the price as a decimal.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Times returns price * quantity.
func (p Price) Times(quantity int) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(quantity)))
}

// IsEqual compares amounts numerically, so 10 and 10.00 are equal.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.String()
}
