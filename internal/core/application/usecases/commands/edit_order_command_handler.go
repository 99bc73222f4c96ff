package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/domain/services"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// EditOrderCommandHandler changes an order's status.
//
// The actor must be able to see the order and their role must be allowed to
// set the target status, otherwise a ForbiddenError is returned and nothing
// changes. After commit:
//   - an Owner setting Cooked publishes COOKED_ORDER
//   - every edit publishes UPDATE_ORDER
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.OrderPolicy
}

func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle returns the order as stored after the edit.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !h.policy.CanSee(actor, current) || !h.policy.CanEdit(actor, cmd.Status()) {
		return nil, errs.NewForbiddenError("editOrder")
	}

	if err = repo.UpdateStatus(ctx, cmd.OrderID(), cmd.Status()); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := events.NewOrderEvent(updated)
	if actor.Is(user.Owner) && cmd.Status() == order.Cooked {
		h.publisher.Publish(ctx, events.CookedOrder, event)
	}
	h.publisher.Publish(ctx, events.UpdateOrder, event)

	return updated, nil
}
