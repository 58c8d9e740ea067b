package restaurant_test

import (
	"testing"

	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newRestaurant(t *testing.T, name string, maxOrders int, rating float64, menu map[string]string) *restaurant.Restaurant {
	t.Helper()

	r, err := restaurant.NewRestaurant(name, maxOrders, rating)
	require.NoError(t, err)
	for item, p := range menu {
		require.NoError(t, r.AddMenuItem(item, price(p)))
	}
	return r
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create item and keep exact price", func(t *testing.T) {
		item, err := restaurant.NewMenuItem("Dosa", price("49.99"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Dosa", item.Name())
		assert.True(t, item.Price().Amount().Equal(price("49.99")))
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t"} {
			item, err := restaurant.NewMenuItem(name, price("10"))

			require.Error(t, err)
			assert.Nil(t, item)
			require.ErrorIs(t, err, restaurant.ErrItemNameIsRequired)
			assert.True(t, errs.IsValidation(err))
		}
	})

	t.Run("should fail with non positive price", func(t *testing.T) {
		for _, p := range []string{"0", "-1", "-0.01"} {
			item, err := restaurant.NewMenuItem("Idli", price(p))

			require.Error(t, err)
			assert.Nil(t, item)
			assert.True(t, errs.IsValidation(err))
		}
	})

	t.Run("should report both problems together", func(t *testing.T) {
		_, err := restaurant.NewMenuItem("", price("0"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "menu item name")
		assert.Contains(t, err.Error(), "price is invalid")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item *restaurant.MenuItem

		assert.Equal(t, restaurant.ErrMenuItemIsNotConstructed, item.Validate())
		assert.Equal(t, restaurant.ErrMenuItemIsNotConstructed, (&restaurant.MenuItem{}).Validate())
	})
}

func TestMenuItem_SetPrice(t *testing.T) {
	t.Run("should replace price", func(t *testing.T) {
		item, _ := restaurant.NewMenuItem("Idli", price("10"))

		require.NoError(t, item.SetPrice(price("12")))
		assert.True(t, item.Price().Amount().Equal(price("12")))
	})

	t.Run("should keep old price on invalid update", func(t *testing.T) {
		item, _ := restaurant.NewMenuItem("Idli", price("10"))

		err := item.SetPrice(price("0"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, item.Price().Amount().Equal(price("10")))
	})

	t.Run("equality is by name only", func(t *testing.T) {
		a, _ := restaurant.NewMenuItem("Idli", price("10"))
		b, _ := restaurant.NewMenuItem("Idli", price("15"))
		c, _ := restaurant.NewMenuItem("Dosa", price("10"))

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}

func TestNewRestaurant(t *testing.T) {
	t.Run("should create restaurant with empty menu", func(t *testing.T) {
		r, err := restaurant.NewRestaurant("R1", 5, 4.5)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "R1", r.Name())
		assert.Equal(t, 5, r.MaxOrders())
		assert.InDelta(t, 4.5, r.Rating().Float64(), 0)
		assert.Equal(t, 0, r.CurrentOrderCount())
		assert.Empty(t, r.Menu())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant("", 5, 4.0)

		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
	})

	t.Run("should fail with non positive capacity", func(t *testing.T) {
		for _, maxOrders := range []int{0, -1} {
			_, err := restaurant.NewRestaurant("TestRestaurant", maxOrders, 4.0)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "max orders is invalid")
		}
	})

	t.Run("should fail with rating out of range", func(t *testing.T) {
		for _, rating := range []float64{-0.5, 6.0} {
			_, err := restaurant.NewRestaurant("TestRestaurant", 5, rating)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(" ", 0, 9)

		assert.Nil(t, r)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestaurant_Menu(t *testing.T) {
	t.Run("add overwrites existing item", func(t *testing.T) {
		r := newRestaurant(t, "R1", 5, 4.5, map[string]string{"Veg Biryani": "100"})

		require.NoError(t, r.AddMenuItem("Veg Biryani", price("90")))

		menu := r.Menu()
		assert.Len(t, menu, 1)
		item := menu["Veg Biryani"]
		assert.True(t, item.Price().Amount().Equal(price("90")))
	})

	t.Run("add rejects invalid item and leaves menu untouched", func(t *testing.T) {
		r := newRestaurant(t, "R1", 5, 4.5, nil)

		require.Error(t, r.AddMenuItem("Chicken65", price("-250")))
		assert.Empty(t, r.Menu())
	})

	t.Run("update price of existing item", func(t *testing.T) {
		r := newRestaurant(t, "R2", 5, 4.0, map[string]string{"Chicken Biryani": "175"})

		require.NoError(t, r.UpdateMenuItemPrice("Chicken Biryani", price("150")))

		item := r.Menu()["Chicken Biryani"]
		assert.True(t, item.Price().Amount().Equal(price("150")))
	})

	t.Run("update price of unknown item is not found", func(t *testing.T) {
		r := newRestaurant(t, "R2", 5, 4.0, nil)

		err := r.UpdateMenuItemPrice("Paneer Tikka", price("150"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("update price validates price", func(t *testing.T) {
		r := newRestaurant(t, "R2", 5, 4.0, map[string]string{"Idli": "10"})

		err := r.UpdateMenuItemPrice("Idli", price("0"))

		assert.True(t, errs.IsValidation(err))
	})

	t.Run("menu snapshot cannot mutate restaurant", func(t *testing.T) {
		r := newRestaurant(t, "R3", 1, 4.9, map[string]string{"Idli": "15"})

		snapshot := r.Menu()
		delete(snapshot, "Idli")
		snapshot["Dosa"] = restaurant.MenuItem{}

		assert.Len(t, r.Menu(), 1)
		assert.True(t, r.HasAllItems(map[string]int{"Idli": 1}))
		assert.False(t, r.HasAllItems(map[string]int{"Dosa": 1}))
	})
}

func TestRestaurant_HasAllItems(t *testing.T) {
	r := newRestaurant(t, "R3", 1, 4.9, map[string]string{"Idli": "15", "Dosa": "30"})

	t.Run("true when every item is offered", func(t *testing.T) {
		assert.True(t, r.HasAllItems(map[string]int{"Idli": 3, "Dosa": 1}))
	})

	t.Run("false when any item is missing", func(t *testing.T) {
		assert.False(t, r.HasAllItems(map[string]int{"Idli": 3, "Paneer Tikka": 1}))
	})

	t.Run("quantities are ignored", func(t *testing.T) {
		assert.True(t, r.HasAllItems(map[string]int{"Idli": 1000}))
	})
}

func TestRestaurant_CalculateTotalCost(t *testing.T) {
	r := newRestaurant(t, "R2", 5, 4.0, map[string]string{"Idli": "10", "Dosa": "50", "Veg Biryani": "80"})

	t.Run("single item scales with quantity", func(t *testing.T) {
		total := r.CalculateTotalCost(map[string]int{"Dosa": 2})

		assert.True(t, total.Equal(price("100")))
	})

	t.Run("items add up", func(t *testing.T) {
		total := r.CalculateTotalCost(map[string]int{"Idli": 1, "Dosa": 1})

		assert.True(t, total.Equal(price("60")))
	})

	t.Run("sample order from the demo", func(t *testing.T) {
		total := r.CalculateTotalCost(map[string]int{"Idli": 3, "Dosa": 1})

		assert.True(t, total.Equal(price("80")))
	})

	t.Run("decimal prices do not lose precision", func(t *testing.T) {
		fine := newRestaurant(t, "Fine", 1, 5, map[string]string{"Tea": "0.10"})

		total := fine.CalculateTotalCost(map[string]int{"Tea": 3})

		assert.Equal(t, "0.3", total.String())
	})

	t.Run("unknown item is a contract violation", func(t *testing.T) {
		assert.Panics(t, func() {
			r.CalculateTotalCost(map[string]int{"Paneer Tikka": 1})
		})
	})
}

func TestRestaurant_Capacity(t *testing.T) {
	t.Run("accept increments until full", func(t *testing.T) {
		r := newRestaurant(t, "R3", 2, 4.9, nil)

		require.NoError(t, r.AcceptOrder())
		assert.True(t, r.CanAcceptOrder())
		require.NoError(t, r.AcceptOrder())

		assert.False(t, r.CanAcceptOrder())
		assert.Equal(t, 2, r.CurrentOrderCount())
	})

	t.Run("accept on full restaurant fails and keeps counter", func(t *testing.T) {
		r := newRestaurant(t, "R3", 1, 4.9, nil)
		require.NoError(t, r.AcceptOrder())

		err := r.AcceptOrder()

		require.ErrorIs(t, err, restaurant.ErrCapacityExceeded)
		assert.Contains(t, err.Error(), "R3")
		assert.Equal(t, 1, r.CurrentOrderCount())
	})

	t.Run("complete releases capacity", func(t *testing.T) {
		r := newRestaurant(t, "R3", 1, 4.9, nil)
		require.NoError(t, r.AcceptOrder())

		require.NoError(t, r.CompleteOrder())

		assert.Equal(t, 0, r.CurrentOrderCount())
		assert.True(t, r.CanAcceptOrder())
	})

	t.Run("complete with no orders is a state error", func(t *testing.T) {
		r := newRestaurant(t, "R3", 1, 4.9, nil)

		err := r.CompleteOrder()

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		require.ErrorIs(t, err, restaurant.ErrNoOrdersToComplete)
		assert.Equal(t, 0, r.CurrentOrderCount())
	})
}
