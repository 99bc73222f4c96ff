package events

import (
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"
)

// PendingOrderFilter delivers new orders of ownerID's restaurants only.
func PendingOrderFilter(ownerID kernel.UUID) pubsub.Filter[OrderEvent] {
	return func(e OrderEvent) bool {
		return e.OwnerID.IsEqual(ownerID)
	}
}

// CookedOrderFilter delivers every cooked order to every driver.
func CookedOrderFilter() pubsub.Filter[OrderEvent] {
	return func(OrderEvent) bool {
		return true
	}
}

// UpdateOrderFilter delivers updates of watchedOrderID to userID as long as
// userID takes part in the order as published. Participation is evaluated
// per event, so a driver watching an order starts receiving updates once
// they took it.
func UpdateOrderFilter(userID, watchedOrderID kernel.UUID) pubsub.Filter[OrderEvent] {
	return func(e OrderEvent) bool {
		return e.ID.IsEqual(watchedOrderID) && e.Involves(userID)
	}
}
