package ports

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"
)

// OrderEventPublisher fans an order event out to matching subscribers and
// reports how many it reached. It never fails.
type OrderEventPublisher interface {
	Publish(ctx context.Context, topic pubsub.Topic, event events.OrderEvent) int
}

// OrderEventSubscriber registers live subscriptions on order topics.
type OrderEventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic pubsub.Topic,
		filter pubsub.Filter[events.OrderEvent],
	) (*pubsub.Subscription[events.OrderEvent], error)
}
