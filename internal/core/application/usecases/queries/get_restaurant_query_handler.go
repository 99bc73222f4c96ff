package queries

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/ports"
)

// RestaurantMenu is a restaurant with every dish it offers.
type RestaurantMenu struct {
	Restaurant *restaurant.Restaurant
	Dishes     []*restaurant.Dish
}

// GetRestaurantQueryHandler returns a restaurant and its menu. Unknown
// restaurants yield an ObjectNotFoundError.
type GetRestaurantQueryHandler struct {
	restaurants ports.RestaurantRepository
	dishes      ports.DishRepository
}

func NewGetRestaurantQueryHandler(
	restaurants ports.RestaurantRepository, dishes ports.DishRepository,
) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{restaurants: restaurants, dishes: dishes}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantMenu, error) {
	if err := query.Validate(); err != nil {
		return RestaurantMenu{}, err
	}

	r, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return RestaurantMenu{}, err
	}

	dishes, err := h.dishes.FindByRestaurant(ctx, r.ID())
	if err != nil {
		return RestaurantMenu{}, err
	}

	return RestaurantMenu{Restaurant: r, Dishes: dishes}, nil
}
