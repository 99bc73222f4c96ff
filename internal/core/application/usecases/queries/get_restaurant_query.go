package queries

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery reads one restaurant with its menu.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

func (q GetRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
