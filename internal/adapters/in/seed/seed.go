// Package seed reads YAML seed files describing restaurants, their menus and
// a script of order operations to replay against the dispatch system.
//
// Example file:
//
//	restaurants:
//	  - name: R1
//	    max_orders: 5
//	    rating: 4.5
//	    menu:
//	      - item: Veg Biryani
//	        price: "100"
//	steps:
//	  - action: place_order
//	    customer: Ashwin
//	    items: {Idli: 3, Dosa: 1}
//	    strategy: lowest_cost
//	  - action: complete_order
//	    order_id: 1
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"dispatch/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Step actions understood by the seed runner.
const (
	ActionPlaceOrder          = "place_order"
	ActionCompleteOrder       = "complete_order"
	ActionCompleteNextOrder   = "complete_next_order"
	ActionAddMenuItem         = "add_menu_item"
	ActionUpdateMenuItemPrice = "update_menu_item_price"
	ActionSetStrategy         = "set_strategy"
	ActionOnboardRestaurant   = "onboard_restaurant"
	ActionShowStatus          = "show_status"
)

var ErrSeedIsEmpty = errors.New("seed file defines no restaurants")

// MenuItem is a menu entry. Price is kept as text so amounts stay exact.
type MenuItem struct {
	Item  string `yaml:"item" validate:"required"`
	Price string `yaml:"price" validate:"required"`
}

// Restaurant is a restaurant to onboard together with its initial menu.
type Restaurant struct {
	Name      string     `yaml:"name" validate:"required"`
	MaxOrders int        `yaml:"max_orders" validate:"gt=0"`
	Rating    float64    `yaml:"rating" validate:"gte=0,lte=5"`
	Menu      []MenuItem `yaml:"menu" validate:"dive"`
}

// Step is one scripted operation. Which fields are used depends on Action.
// onboard_restaurant values are left unchecked so scripts can show how the
// system refuses bad input.
type Step struct {
	Section    string         `yaml:"section"`
	Action     string         `yaml:"action" validate:"required,oneof=place_order complete_order complete_next_order add_menu_item update_menu_item_price set_strategy onboard_restaurant show_status"`
	Name       string         `yaml:"name"`
	MaxOrders  int            `yaml:"max_orders"`
	Rating     float64        `yaml:"rating"`
	Customer   string         `yaml:"customer" validate:"required_if=Action place_order"`
	Items      map[string]int `yaml:"items" validate:"required_if=Action place_order"`
	Strategy   string         `yaml:"strategy" validate:"required_if=Action set_strategy"`
	OrderID    int            `yaml:"order_id" validate:"required_if=Action complete_order"`
	Restaurant string         `yaml:"restaurant" validate:"required_if=Action add_menu_item,required_if=Action update_menu_item_price"`
	Item       string         `yaml:"item" validate:"required_if=Action add_menu_item,required_if=Action update_menu_item_price"`
	Price      string         `yaml:"price" validate:"required_if=Action add_menu_item,required_if=Action update_menu_item_price"`
}

// Seed is the parsed content of a seed file.
type Seed struct {
	Restaurants []Restaurant `yaml:"restaurants" validate:"dive"`
	Steps       []Step       `yaml:"steps" validate:"dive"`
}

// Load reads and parses the seed file at path.
func Load(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	return Parse(bytes.NewReader(raw))
}

// Parse decodes a seed document and validates it. Prices are checked to be
// decimal numbers here; their positivity is left to the domain.
func Parse(r io.Reader) (Seed, error) {
	var s Seed

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Seed{}, ErrSeedIsEmpty
		}
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	if len(s.Restaurants) == 0 {
		return Seed{}, ErrSeedIsEmpty
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return Seed{}, errs.NewValueIsInvalidErrorWithCause("seed", err)
	}

	var priceErrs []error
	for _, restaurant := range s.Restaurants {
		for _, item := range restaurant.Menu {
			if _, err := ParsePrice(item.Price); err != nil {
				priceErrs = append(priceErrs, fmt.Errorf("%s/%s: %w", restaurant.Name, item.Item, err))
			}
		}
	}
	for i, step := range s.Steps {
		if step.Price == "" {
			continue
		}
		if _, err := ParsePrice(step.Price); err != nil {
			priceErrs = append(priceErrs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if err := errors.Join(priceErrs...); err != nil {
		return Seed{}, err
	}

	return s, nil
}

// ParsePrice converts a textual amount to a decimal.
func ParsePrice(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return d, nil
}

// Orders returns the place_order steps, in script order.
func (s Seed) Orders() []Step {
	orders := make([]Step, 0)
	for _, step := range s.Steps {
		if step.Action == ActionPlaceOrder {
			orders = append(orders, step)
		}
	}
	return orders
}
