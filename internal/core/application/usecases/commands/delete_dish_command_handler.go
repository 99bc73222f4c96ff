package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// DeleteDishCommandHandler removes a dish from a menu the caller owns.
type DeleteDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteDishCommandHandler(uowFactory CatalogUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := ownedDish(ctx, uow, cmd.OwnerID(), cmd.DishID(), "deleteDish"); err != nil {
		return err
	}

	if err := uow.DishRepository().Delete(ctx, cmd.DishID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ownedDish loads a dish and checks that ownerID owns its restaurant.
func ownedDish(
	ctx context.Context, uow CatalogUoW, ownerID, dishID kernel.UUID, action string,
) (*restaurant.Dish, error) {
	dish, err := uow.DishRepository().Get(ctx, dishID)
	if err != nil {
		return nil, err
	}

	r, err := uow.RestaurantRepository().Get(ctx, dish.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(ownerID) {
		return nil, errs.NewForbiddenError(action)
	}

	return dish, nil
}
