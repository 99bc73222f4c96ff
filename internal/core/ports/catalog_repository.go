package ports

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
)

// RestaurantPageSize is how many restaurants one listing page holds.
const RestaurantPageSize = 10

// RestaurantFilter selects one page of a restaurant listing.
type RestaurantFilter struct {
	// Name keeps restaurants whose name contains it, ignoring case.
	// Empty keeps all.
	Name string

	// Page is 1-based.
	Page int
}

// Offset is the number of restaurants before the requested page.
func (f RestaurantFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * RestaurantPageSize
}

// RestaurantRepository stores restaurants. Get returns an
// ObjectNotFoundError for unknown IDs.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// List returns one page of restaurants ordered by name, then ID, and the
	// number of restaurants matching the filter across all pages.
	List(ctx context.Context, filter RestaurantFilter) ([]*restaurant.Restaurant, int, error)
}

// DishRepository stores dishes with their option catalogue.
type DishRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Dish) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error)

	// GetMany returns the dishes found among ids, keyed by ID. Missing IDs
	// are simply absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*restaurant.Dish, error)

	// FindByRestaurant lists a restaurant's menu ordered by name, then ID.
	FindByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Dish, error)

	// Update overwrites an existing dish. Unknown IDs yield an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *restaurant.Dish) error

	// Delete removes a dish. Unknown IDs yield an ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
