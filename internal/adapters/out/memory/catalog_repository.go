package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

var (
	_ ports.RestaurantRepository = (*RestaurantRepository)(nil)
	_ ports.DishRepository       = (*DishRepository)(nil)
)

type RestaurantRepository struct {
	tx access
}

func (r *RestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		if _, ok := t.restaurants.get(aggregate.ID()); ok {
			return errs.NewConflictError("restaurant " + aggregate.ID().String() + " already exists")
		}
		t.restaurants.put(aggregate.ID(), aggregate)
		return nil
	})
}

func (r *RestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *restaurant.Restaurant
	err := r.tx.read(func(t *tables) error {
		rest, ok := t.restaurants.get(id)
		if !ok {
			return errs.NewObjectNotFoundError("restaurantID", id)
		}
		found = rest
		return nil
	})
	return found, err
}

func (r *RestaurantRepository) List(
	ctx context.Context, filter ports.RestaurantFilter,
) ([]*restaurant.Restaurant, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Name))
	matched := make([]*restaurant.Restaurant, 0)
	err := r.tx.read(func(t *tables) error {
		t.restaurants.each(func(rest *restaurant.Restaurant) {
			if strings.Contains(strings.ToLower(rest.Name()), needle) {
				matched = append(matched, rest)
			}
		})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.ID().String() < b.ID().String()
	})

	total := len(matched)
	from := min(filter.Offset(), total)
	to := min(from+ports.RestaurantPageSize, total)
	return matched[from:to], total, nil
}

// DishRepository hands out copies, so callers may edit a dish before
// passing it to Update.
type DishRepository struct {
	tx access
}

func (r *DishRepository) Add(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		if _, ok := t.dishes.get(aggregate.ID()); ok {
			return errs.NewConflictError("dish " + aggregate.ID().String() + " already exists")
		}
		t.dishes.put(aggregate.ID(), aggregate.Clone())
		return nil
	})
}

func (r *DishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *restaurant.Dish
	err := r.tx.read(func(t *tables) error {
		d, ok := t.dishes.get(id)
		if !ok {
			return errs.NewObjectNotFoundError("dishID", id)
		}
		found = d.Clone()
		return nil
	})
	return found, err
}

func (r *DishRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*restaurant.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := make(map[kernel.UUID]*restaurant.Dish, len(ids))
	err := r.tx.read(func(t *tables) error {
		for _, id := range ids {
			if d, ok := t.dishes.get(id); ok {
				found[id] = d.Clone()
			}
		}
		return nil
	})
	return found, err
}

func (r *DishRepository) FindByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	menu := make([]*restaurant.Dish, 0)
	err := r.tx.read(func(t *tables) error {
		t.dishes.each(func(d *restaurant.Dish) {
			if d.BelongsTo(restaurantID) {
				menu = append(menu, d.Clone())
			}
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(menu, func(i, j int) bool {
		a, b := menu[i], menu[j]
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.ID().String() < b.ID().String()
	})
	return menu, nil
}

func (r *DishRepository) Update(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		if _, ok := t.dishes.get(aggregate.ID()); !ok {
			return errs.NewObjectNotFoundError("dishID", aggregate.ID())
		}
		t.dishes.put(aggregate.ID(), aggregate.Clone())
		return nil
	})
}

func (r *DishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		if _, ok := t.dishes.get(id); !ok {
			return errs.NewObjectNotFoundError("dishID", id)
		}
		t.dishes.remove(id)
		return nil
	})
}
