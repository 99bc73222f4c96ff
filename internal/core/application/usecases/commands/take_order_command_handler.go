package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// TakeOrderCommandHandler assigns a driver to an order.
//
// The assignment is a compare-and-swap in the repository: of two drivers
// racing for the same order exactly one wins, the other gets
// order.ErrDriverAlreadyAssigned and the stored driver is left untouched.
// UPDATE_ORDER is published only for the winner.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

func NewTakeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the order as stored after the driver was assigned.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	driver := cmd.Driver()
	if !driver.Is(user.Driver) {
		return nil, errs.NewForbiddenError("takeOrder")
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
	if current.HasDriver() {
		return nil, order.NewDriverAlreadyAssignedError(cmd.OrderID())
	}

	if err = repo.AssignDriver(ctx, cmd.OrderID(), driver.ID()); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, events.UpdateOrder, events.NewOrderEvent(updated))
	return updated, nil
}
