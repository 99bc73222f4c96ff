package events

import (
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"

	"github.com/shopspring/decimal"
)

const (
	PendingOrder pubsub.Topic = "PENDING_ORDER"
	CookedOrder  pubsub.Topic = "COOKED_ORDER"
	UpdateOrder  pubsub.Topic = "UPDATE_ORDER"
)

// Topics lists every order topic.
func Topics() []pubsub.Topic {
	return []pubsub.Topic{PendingOrder, CookedOrder, UpdateOrder}
}

// ItemOption mirrors order.ItemOption in the envelope.
type ItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

type Item struct {
	DishID  kernel.UUID  `json:"dishId"`
	Options []ItemOption `json:"options,omitempty"`
}

// OrderEvent is the envelope published on every order topic. It is a
// snapshot taken after the change was committed and shares no memory with
// the aggregate, so subscribers may read it from any goroutine.
type OrderEvent struct {
	ID           kernel.UUID     `json:"id"`
	CustomerID   kernel.UUID     `json:"customerId"`
	RestaurantID kernel.UUID     `json:"restaurantId"`
	OwnerID      kernel.UUID     `json:"ownerId"`
	DriverID     *kernel.UUID    `json:"driverId,omitempty"`
	Status       string          `json:"status"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Items        []Item          `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewOrderEvent snapshots o.
func NewOrderEvent(o *order.Order) OrderEvent {
	items := o.Items()
	evItems := make([]Item, 0, len(items))
	for _, item := range items {
		var options []ItemOption
		for _, opt := range item.Options() {
			options = append(options, ItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		evItems = append(evItems, Item{DishID: item.DishID(), Options: options})
	}

	return OrderEvent{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.RestaurantID(),
		OwnerID:      o.OwnerID(),
		DriverID:     o.DriverID(),
		Status:       o.Status().String(),
		TotalPrice:   o.TotalPrice(),
		Items:        evItems,
		CreatedAt:    o.CreatedAt(),
	}
}

// Involves reports whether userID is the customer, driver or owner of the order.
func (e OrderEvent) Involves(userID kernel.UUID) bool {
	if e.CustomerID.IsEqual(userID) || e.OwnerID.IsEqual(userID) {
		return true
	}
	return e.DriverID != nil && e.DriverID.IsEqual(userID)
}
