package queries

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of viewer.
type GetOrderQuery struct {
	viewer  *user.User
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(viewer *user.User, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(viewer.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		viewer:  viewer,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Viewer() *user.User {
	return q.viewer
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
