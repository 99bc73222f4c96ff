package commands

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

// DeleteDishCommand takes a dish off its restaurant's menu. Orders that
// already reference it keep their items.
type DeleteDishCommand struct {
	ownerID kernel.UUID
	dishID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(ownerID, dishID kernel.UUID) (DeleteDishCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return DeleteDishCommand{}, errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	if err := dishID.Validate(); err != nil {
		return DeleteDishCommand{}, errs.NewValueIsRequiredErrorWithCause("dishID", err)
	}

	return DeleteDishCommand{
		ownerID: ownerID,
		dishID:  dishID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) OwnerID() kernel.UUID { return c.ownerID }
func (c DeleteDishCommand) DishID() kernel.UUID { return c.dishID }
