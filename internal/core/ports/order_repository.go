package ports

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. The zero value matches every order.
type OrderFilter struct {
	// Status keeps only orders in this status. order.Unknown keeps all.
	Status order.Status
}

// Matches reports whether o passes the filter.
func (f OrderFilter) Matches(o *order.Order) bool {
	return f.Status == order.Unknown || o.Status() == f.Status
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Items and total price are written once by Add. Afterwards only the status
// and the driver change, each through its own narrow write so concurrent
// edits and claims on one order never overwrite each other.
//
// Listings are ordered by creation time, then ID.
type OrderRepository interface {
	// Add persists a new order with all of its items as one unit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus overwrites the status of an existing order.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error

	// AssignDriver sets the driver if and only if the order has none yet.
	// The losing side of a race gets order.ErrDriverAlreadyAssigned.
	AssignDriver(ctx context.Context, id, driverID kernel.UUID) error

	// FindByCustomer lists orders placed by customerID.
	FindByCustomer(ctx context.Context, customerID kernel.UUID, filter OrderFilter) ([]*order.Order, error)

	// FindByDriver lists orders taken by driverID.
	FindByDriver(ctx context.Context, driverID kernel.UUID, filter OrderFilter) ([]*order.Order, error)

	// FindByOwner lists orders of every restaurant ownerID owns.
	FindByOwner(ctx context.Context, ownerID kernel.UUID, filter OrderFilter) ([]*order.Order, error)
}
