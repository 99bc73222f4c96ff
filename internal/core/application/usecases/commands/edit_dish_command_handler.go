package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
)

// EditDishCommandHandler edits a dish on a menu the caller owns and returns
// the stored result. Unknown dishes yield an ObjectNotFoundError, foreign
// ones a ForbiddenError.
type EditDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewEditDishCommandHandler(uowFactory CatalogUoWFactory) EditDishCommandHandler {
	return EditDishCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h EditDishCommandHandler) Handle(ctx context.Context, cmd EditDishCommand) (*restaurant.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dish, err := ownedDish(ctx, uow, cmd.OwnerID(), cmd.DishID(), "editDish")
	if err != nil {
		return nil, err
	}

	if err = dish.Edit(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = uow.DishRepository().Update(ctx, dish); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dish, nil
}
