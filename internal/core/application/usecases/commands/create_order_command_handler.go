package commands

import (
	"context"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/services"
	"github.com/beliemun/uber-backend/internal/core/ports"
)

// CreateOrderCommandHandler places orders and announces them on PENDING_ORDER.
//
// The restaurant and every dish are loaded in the same transaction the order
// is written in. Any missing restaurant or dish, or a dish from another
// restaurant, aborts before anything is written.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	pricer     services.OrderPricer
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pricer:     services.NewOrderPricer(),
		now:        time.Now,
	}
}

// Handle persists the order in Pending status and publishes it to the
// restaurant owner once committed.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	dishes, err := uow.DishRepository().GetMany(ctx, cmd.DishIDs())
	if err != nil {
		return err
	}

	total, err := h.pricer.Total(r.ID(), cmd.Items(), dishes)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), r.ID(), r.OwnerID(), cmd.Items(), total, h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.PendingOrder, events.NewOrderEvent(o))
	return nil
}
