package services

import (
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
)

// OrderPolicy decides visibility and edit eligibility. All methods are pure.
//
// Visibility:
//   - a Client sees orders they placed
//   - an Owner sees orders placed with a restaurant they own
//   - a Driver sees orders they took
//
// Each role is checked against its own field only, so a Client whose ID
// happens to equal the driver or owner of an order still cannot see it.
//
// Edit eligibility is per role and per target status:
//   - Client: never
//   - Owner: Cooking, Cooked
//   - Driver: PickedUp, Delivered
type OrderPolicy struct{}

func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// CanSee reports whether u may read o and receive its updates.
func (OrderPolicy) CanSee(u *user.User, o *order.Order) bool {
	if u == nil || o == nil {
		return false
	}

	switch u.Role() {
	case user.Client:
		return o.CustomerID().IsEqual(u.ID())
	case user.Owner:
		return o.OwnerID().IsEqual(u.ID())
	case user.Driver:
		driverID := o.DriverID()
		return driverID != nil && driverID.IsEqual(u.ID())
	default:
		return false
	}
}

// CanEdit reports whether u's role may move an order to target.
// The order's current status is not consulted.
func (OrderPolicy) CanEdit(u *user.User, target order.Status) bool {
	if u == nil {
		return false
	}

	switch u.Role() {
	case user.Owner:
		return target == order.Cooking || target == order.Cooked
	case user.Driver:
		return target == order.PickedUp || target == order.Delivered
	default:
		return false
	}
}

// AllowedTargets lists the statuses role may set, in lifecycle order.
func (OrderPolicy) AllowedTargets(role user.Role) []order.Status {
	switch role {
	case user.Owner:
		return []order.Status{order.Cooking, order.Cooked}
	case user.Driver:
		return []order.Status{order.PickedUp, order.Delivered}
	default:
		return nil
	}
}
