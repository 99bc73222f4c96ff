package commands

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand adds a dish to a restaurant's menu. Field rules are
// enforced by restaurant.NewDish when the handler builds the dish.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	ownerID      kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	description  string
	options      []restaurant.Option

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(
	dishID, ownerID, restaurantID kernel.UUID,
	name string,
	price decimal.Decimal,
	description string,
	options []restaurant.Option,
) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		name:        name,
		price:       price,
		description: description,
		options:     options,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDishID(dishID),
		cmd.setOwnerID(ownerID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return cmd, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) DishID() kernel.UUID { return c.dishID }
func (c CreateDishCommand) OwnerID() kernel.UUID { return c.ownerID }
func (c CreateDishCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateDishCommand) Name() string { return c.name }
func (c CreateDishCommand) Price() decimal.Decimal { return c.price }
func (c CreateDishCommand) Description() string { return c.description }
func (c CreateDishCommand) Options() []restaurant.Option { return c.options }

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	c.restaurantID = restaurantID
	return nil
}
