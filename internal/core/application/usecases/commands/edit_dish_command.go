package commands

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrEditDishCommandIsNotConstructed = errors.New(
	"EditDishCommand must be created via NewEditDishCommand constructor",
)

// EditDishCommand changes the patched fields of a dish. Field rules are
// enforced by restaurant.Dish.Edit.
type EditDishCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	dishID  kernel.UUID
	patch   restaurant.DishPatch

	guard guard.ConstructorGuard
}

func NewEditDishCommand(ownerID, dishID kernel.UUID, patch restaurant.DishPatch) (EditDishCommand, error) {
	cmd := EditDishCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setDishID(dishID),
	); err != nil {
		return EditDishCommand{}, err
	}

	return cmd, nil
}

func (c EditDishCommand) Validate() error {
	return c.guard.Validate(ErrEditDishCommandIsNotConstructed)
}

func (c EditDishCommand) OwnerID() kernel.UUID { return c.ownerID }
func (c EditDishCommand) DishID() kernel.UUID { return c.dishID }
func (c EditDishCommand) Patch() restaurant.DishPatch { return c.patch }

func (c *EditDishCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *EditDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dishID", err)
	}
	c.dishID = dishID
	return nil
}
