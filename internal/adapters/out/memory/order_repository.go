package memory

import (
	"context"
	"sort"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

type OrderRepository struct {
	tx access
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		if _, ok := t.orders.get(aggregate.ID()); ok {
			return errs.NewConflictError("order " + aggregate.ID().String() + " already exists")
		}
		t.orders.put(aggregate.ID(), aggregate.Clone())
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.tx.read(func(t *tables) error {
		o, ok := t.orders.get(id)
		if !ok {
			return errs.NewObjectNotFoundError("orderID", id)
		}
		found = o.Clone()
		return nil
	})
	return found, err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		o, ok := t.orders.get(id)
		if !ok {
			return errs.NewObjectNotFoundError("orderID", id)
		}
		changed := o.Clone()
		if err := changed.ChangeStatus(status); err != nil {
			return err
		}
		t.orders.put(id, changed)
		return nil
	})
}

// AssignDriver checks and sets the driver in one statement. Inside a unit of
// work the statement runs again against the live order at Commit, so exactly
// one of several concurrent callers wins and the others fail with
// order.ErrDriverAlreadyAssigned. Writes to other orders never wait on it.
func (r *OrderRepository) AssignDriver(ctx context.Context, id, driverID kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		o, ok := t.orders.get(id)
		if !ok {
			return errs.NewObjectNotFoundError("orderID", id)
		}
		changed := o.Clone()
		if err := changed.Take(driverID); err != nil {
			return err
		}
		t.orders.put(id, changed)
		return nil
	})
}

func (r *OrderRepository) FindByCustomer(
	ctx context.Context, customerID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	return r.find(ctx, filter, func(o *order.Order) bool {
		return o.CustomerID() == customerID
	})
}

func (r *OrderRepository) FindByDriver(
	ctx context.Context, driverID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	return r.find(ctx, filter, func(o *order.Order) bool {
		d := o.DriverID()
		return d != nil && *d == driverID
	})
}

func (r *OrderRepository) FindByOwner(
	ctx context.Context, ownerID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	return r.find(ctx, filter, func(o *order.Order) bool {
		return o.OwnerID() == ownerID
	})
}

func (r *OrderRepository) find(
	ctx context.Context, filter ports.OrderFilter, belongs func(*order.Order) bool,
) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0)
	err := r.tx.read(func(t *tables) error {
		t.orders.each(func(o *order.Order) {
			if belongs(o) && filter.Matches(o) {
				result = append(result, o.Clone())
			}
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})
	return result, nil
}
