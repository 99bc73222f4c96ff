package services

import (
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderPricer computes the total of a new order.
//
// Each item costs its dish price plus the extra of every chosen option, as
// resolved by restaurant.Dish.OptionExtra. Options the dish does not offer
// cost nothing.
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Total prices items placed with restaurantID.
//
// It fails with an ObjectNotFoundError if an item references a dish missing
// from dishes, and with a ValueIsInvalidError if a dish is on another
// restaurant's menu. Nothing is returned on failure.
func (OrderPricer) Total(
	restaurantID kernel.UUID,
	items []order.Item,
	dishes map[kernel.UUID]*restaurant.Dish,
) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, item := range items {
		dish, ok := dishes[item.DishID()]
		if !ok || dish == nil {
			return decimal.Zero, errs.NewObjectNotFoundError("dishID", item.DishID())
		}
		if !dish.BelongsTo(restaurantID) {
			return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
				"dishID",
				errs.NewObjectNotFoundError("restaurant dish", item.DishID()),
			)
		}

		total = total.Add(dish.Price())
		for _, option := range item.Options() {
			total = total.Add(dish.OptionExtra(option.Name, option.Choice))
		}
	}

	return total, nil
}
