package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler adds a restaurant to the catalogue.
type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.OwnerID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
