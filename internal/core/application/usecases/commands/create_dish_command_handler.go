package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// CreateDishCommandHandler adds a dish to a restaurant the caller owns.
// Unknown restaurants yield an ObjectNotFoundError, foreign ones a ForbiddenError.
type CreateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
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

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !r.IsOwnedBy(cmd.OwnerID()) {
		return errs.NewForbiddenError("createDish")
	}

	dish, err := restaurant.NewDish(
		cmd.DishID(), r.ID(), cmd.Name(), cmd.Price(), cmd.Description(), cmd.Options(),
	)
	if err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
