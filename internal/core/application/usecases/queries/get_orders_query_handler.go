package queries

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// GetOrdersQueryHandler lists orders by the viewer's role:
//   - Client: orders they placed
//   - Driver: orders they took
//   - Owner: orders of every restaurant they own
//
// Results come in creation order, so identical queries without an
// intervening change return identical lists.
type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	viewer := query.Viewer()
	filter := ports.OrderFilter{Status: query.Status()}

	switch viewer.Role() {
	case user.Client:
		return h.orders.FindByCustomer(ctx, viewer.ID(), filter)
	case user.Driver:
		return h.orders.FindByDriver(ctx, viewer.ID(), filter)
	case user.Owner:
		return h.orders.FindByOwner(ctx, viewer.ID(), filter)
	default:
		return nil, errs.NewForbiddenError("getOrders")
	}
}
