// Package subscriptions opens live order feeds for authorized callers.
// Each feed is a pubsub subscription bound to the caller's context: it ends
// when the caller disconnects or closes it.
package subscriptions

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"
)

// Feed is a live stream of order events.
type Feed = *pubsub.Subscription[events.OrderEvent]

// OrderLookup is the part of ports.OrderRepository OrderUpdates needs.
type OrderLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

type Handler struct {
	subscriber ports.OrderEventSubscriber
	orders     OrderLookup
}

func NewHandler(subscriber ports.OrderEventSubscriber, orders OrderLookup) Handler {
	return Handler{subscriber: subscriber, orders: orders}
}

// PendingOrders streams new orders of the restaurants viewer owns.
func (h Handler) PendingOrders(ctx context.Context, viewer *user.User) (Feed, error) {
	if err := viewer.Validate(); err != nil {
		return nil, err
	}
	if !viewer.Is(user.Owner) {
		return nil, errs.NewForbiddenError("pendingOrders")
	}
	return h.subscriber.Subscribe(ctx, events.PendingOrder, events.PendingOrderFilter(viewer.ID()))
}

// CookedOrders streams every order an owner marks Cooked.
func (h Handler) CookedOrders(ctx context.Context, viewer *user.User) (Feed, error) {
	if err := viewer.Validate(); err != nil {
		return nil, err
	}
	if !viewer.Is(user.Driver) {
		return nil, errs.NewForbiddenError("cookedOrders")
	}
	return h.subscriber.Subscribe(ctx, events.CookedOrder, events.CookedOrderFilter())
}

// OrderUpdates streams changes to watchedOrderID while viewer is its
// customer, owner or driver. Unknown orders yield an ObjectNotFoundError.
// Participation is checked per event, so a driver may watch an order
// before taking it.
func (h Handler) OrderUpdates(ctx context.Context, viewer *user.User, watchedOrderID kernel.UUID) (Feed, error) {
	if err := viewer.Validate(); err != nil {
		return nil, err
	}
	if err := watchedOrderID.Validate(); err != nil {
		return nil, err
	}
	if _, err := h.orders.Get(ctx, watchedOrderID); err != nil {
		return nil, err
	}
	return h.subscriber.Subscribe(ctx, events.UpdateOrder, events.UpdateOrderFilter(viewer.ID(), watchedOrderID))
}
