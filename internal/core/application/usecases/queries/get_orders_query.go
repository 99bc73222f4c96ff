package queries

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the viewer's orders, optionally in a single status.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(viewer, order.Cooked)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	viewer *user.User
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery accepts order.Unknown as "any status".
func NewGetOrdersQuery(viewer *user.User, status order.Status) (GetOrdersQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		viewer: viewer,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Viewer() *user.User {
	return q.viewer
}

func (q GetOrdersQuery) Status() order.Status {
	return q.status
}
