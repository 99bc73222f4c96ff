package restaurant_test

import (
	"strings"
	"testing"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizzaOptions() []restaurant.Option {
	return []restaurant.Option{
		{
			Name: "Size",
			Choices: []restaurant.Choice{
				{Name: "Small"},
				{Name: "Large", Extra: decimal.NewFromInt(2)},
			},
		},
		{Name: "Extra cheese", Extra: decimal.RequireFromString("1.50")},
		{
			Name:  "Crust",
			Extra: decimal.NewFromInt(3),
			Choices: []restaurant.Choice{
				{Name: "Thin", Extra: decimal.NewFromInt(9)},
			},
		},
		{Name: "Size", Extra: decimal.NewFromInt(100)},
	}
}

func newPizza(t *testing.T) *restaurant.Dish {
	t.Helper()
	d, err := restaurant.NewDish(
		kernel.NewUUID(), kernel.NewUUID(), "Pizza", decimal.NewFromInt(10), "Stone oven pizza", pizzaOptions(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDish(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should create dish", func(t *testing.T) {
		d, err := restaurant.NewDish(
			kernel.NewUUID(), restaurantID, "Pizza", decimal.NewFromInt(10), "Stone oven pizza", pizzaOptions(),
		)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Pizza", d.Name())
		assert.True(t, d.Price().Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "Stone oven pizza", d.Description())
		assert.Len(t, d.Options(), 4)
		assert.True(t, d.BelongsTo(restaurantID))
		assert.False(t, d.BelongsTo(kernel.NewUUID()))
	})

	tests := []struct {
		name        string
		dishName    string
		price       decimal.Decimal
		description string
		options     []restaurant.Option
		wantErr     error
	}{
		{"missing name", "", decimal.NewFromInt(1), "Tasty dish", nil, errs.ErrValueIsRequired},
		{"negative price", "Soup", decimal.NewFromInt(-1), "Tasty dish", nil, errs.ErrValueIsOutOfRange},
		{"short description", "Soup", decimal.NewFromInt(1), "Yum", nil, errs.ErrValueIsOutOfRange},
		{"long description", "Soup", decimal.NewFromInt(1), strings.Repeat("x", 201), nil, errs.ErrValueIsOutOfRange},
		{
			"unnamed option", "Soup", decimal.NewFromInt(1), "Tasty dish",
			[]restaurant.Option{{Name: " "}}, errs.ErrValueIsRequired,
		},
		{
			"negative choice extra", "Soup", decimal.NewFromInt(1), "Tasty dish",
			[]restaurant.Option{{Name: "Size", Choices: []restaurant.Choice{{Name: "L", Extra: decimal.NewFromInt(-2)}}}},
			errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, tt.dishName, tt.price, tt.description, tt.options)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, d)
		})
	}
}

func TestDish_OptionExtra(t *testing.T) {
	d := newPizza(t)

	tests := []struct {
		name   string
		option string
		choice string
		want   decimal.Decimal
	}{
		{"choice extra", "Size", "Large", decimal.NewFromInt(2)},
		{"choice without extra", "Size", "Small", decimal.Zero},
		{"flat extra", "Extra cheese", "", decimal.RequireFromString("1.5")},
		{"flat extra wins over choices", "Crust", "Thin", decimal.NewFromInt(3)},
		{"first option with the name wins", "Size", "Medium", decimal.Zero},
		{"unknown option", "Sauce", "BBQ", decimal.Zero},
		{"option names are case sensitive", "size", "Large", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.OptionExtra(tt.option, tt.choice)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDish_OptionsAreCopied(t *testing.T) {
	options := pizzaOptions()
	d, err := restaurant.NewDish(
		kernel.NewUUID(), kernel.NewUUID(), "Pizza", decimal.NewFromInt(10), "Stone oven pizza", options,
	)
	require.NoError(t, err)

	options[0].Choices[1].Extra = decimal.NewFromInt(50)
	got := d.Options()
	got[0].Name = "Changed"

	assert.True(t, decimal.NewFromInt(2).Equal(d.OptionExtra("Size", "Large")))
	assert.Equal(t, "Size", d.Options()[0].Name)
}

func TestDish_Edit(t *testing.T) {
	t.Run("changes only the patched fields", func(t *testing.T) {
		d := newPizza(t)
		name, price := "Margherita", decimal.RequireFromString("11.50")

		require.NoError(t, d.Edit(restaurant.DishPatch{Name: &name, Price: &price}))

		assert.Equal(t, "Margherita", d.Name())
		assert.True(t, d.Price().Equal(price))
		assert.Equal(t, "Stone oven pizza", d.Description())
		assert.Len(t, d.Options(), 4)
	})

	t.Run("replaces the option catalogue", func(t *testing.T) {
		d := newPizza(t)
		var none []restaurant.Option

		require.NoError(t, d.Edit(restaurant.DishPatch{Options: &none}))

		assert.Empty(t, d.Options())
	})

	t.Run("invalid patch leaves the dish unchanged", func(t *testing.T) {
		d := newPizza(t)
		name, description := "Calzone", "no"

		err := d.Edit(restaurant.DishPatch{Name: &name, Description: &description})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, "Pizza", d.Name())
		assert.Equal(t, "Stone oven pizza", d.Description())
	})

	t.Run("negative price", func(t *testing.T) {
		d := newPizza(t)
		price := decimal.NewFromInt(-1)

		require.ErrorIs(t, d.Edit(restaurant.DishPatch{Price: &price}), errs.ErrValueIsOutOfRange)
		assert.True(t, d.Price().Equal(decimal.NewFromInt(10)))
	})

	t.Run("zero value dish", func(t *testing.T) {
		var d restaurant.Dish
		name := "Pizza"
		require.ErrorIs(t, d.Edit(restaurant.DishPatch{Name: &name}), restaurant.ErrDishIsNotConstructed)
	})
}

func TestDish_Clone(t *testing.T) {
	d := newPizza(t)
	c := d.Clone()

	name := "Calzone"
	require.NoError(t, c.Edit(restaurant.DishPatch{Name: &name}))

	assert.Equal(t, "Pizza", d.Name())
	assert.Equal(t, d.ID(), c.ID())
	require.NoError(t, c.Validate())
}
