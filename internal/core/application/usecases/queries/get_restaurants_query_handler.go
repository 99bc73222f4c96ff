package queries

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/ports"
)

// RestaurantPage is one page of the catalogue.
type RestaurantPage struct {
	Restaurants []*restaurant.Restaurant
	TotalItems  int
	TotalPages  int
}

type GetRestaurantsQueryHandler struct {
	restaurants ports.RestaurantRepository
}

func NewGetRestaurantsQueryHandler(restaurants ports.RestaurantRepository) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{restaurants: restaurants}
}

func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) (RestaurantPage, error) {
	if err := query.Validate(); err != nil {
		return RestaurantPage{}, err
	}

	found, total, err := h.restaurants.List(ctx, ports.RestaurantFilter{Name: query.Name(), Page: query.Page()})
	if err != nil {
		return RestaurantPage{}, err
	}

	return RestaurantPage{
		Restaurants: found,
		TotalItems:  total,
		TotalPages:  (total + ports.RestaurantPageSize - 1) / ports.RestaurantPageSize,
	}, nil
}
