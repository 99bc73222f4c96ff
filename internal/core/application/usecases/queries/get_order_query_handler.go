package queries

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/services"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order the viewer may see. Unknown orders
// yield an ObjectNotFoundError, foreign ones a ForbiddenError.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.OrderPolicy
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: services.NewOrderPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanSee(query.Viewer(), o) {
		return nil, errs.NewForbiddenError("getOrder")
	}

	return o, nil
}
