package order

import (
	"errors"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverAlreadyAssigned is the cause of the conflict returned by Take,
	// and by repositories when a concurrent claim won the compare-and-swap on
	// the driver.
	ErrDriverAlreadyAssigned = errors.New("driver already assigned")
)

// NewDriverAlreadyAssignedError reports a claim on an order that already has
// a driver. It matches both errs.ErrConflict and ErrDriverAlreadyAssigned.
func NewDriverAlreadyAssignedError(id kernel.UUID) error {
	return errs.NewConflictErrorWithCause("order "+id.String()+" is taken", ErrDriverAlreadyAssigned)
}

// Order is the aggregate root of the ordering workflow.
//
// The owner ID is copied from the restaurant at creation so that visibility
// and event routing never need a second lookup.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the Client who placed the order
	customerID kernel.UUID

	// restaurantID is the restaurant the order was placed with
	restaurantID kernel.UUID

	// ownerID is the Owner of restaurantID at creation time
	ownerID kernel.UUID

	// driverID is nil until a Driver takes the order
	driverID *kernel.UUID

	items      []Item
	totalPrice decimal.Decimal
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates a Pending order without a driver.
//
// Every ID must be valid, there must be at least one valid item and the
// total price must not be negative. Price calculation happens before, in
// services.OrderPricer, against the dishes the items reference.
func NewOrder(
	id, customerID, restaurantID, ownerID kernel.UUID,
	items []Item,
	totalPrice decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParty("customerID", &o.customerID, customerID),
		o.setParty("restaurantID", &o.restaurantID, restaurantID),
		o.setParty("ownerID", &o.ownerID, ownerID),
		o.setItems(items),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read back from storage. It applies the same
// validation as NewOrder plus the stored status and driver.
func RestoreOrder(
	id, customerID, restaurantID, ownerID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	totalPrice decimal.Decimal,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, ownerID, items, totalPrice, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("driverID", err)
		}
		d := *driverID
		o.driverID = &d
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// DriverID returns a copy of the assigned driver, or nil.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	d := *o.driverID
	return &d
}

// HasDriver reports whether a driver took the order.
func (o *Order) HasDriver() bool {
	return o.driverID != nil
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return cloneItems(o.items)
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Take assigns driverID if the order has no driver yet.
// A second call fails with ErrDriverAlreadyAssigned and leaves the order unchanged.
func (o *Order) Take(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return NewDriverAlreadyAssignedError(o.id)
	}
	o.driverID = &driverID
	return nil
}

// ChangeStatus sets any valid status without comparing it to the current
// one. Role-scoped checks in services.OrderPolicy are the only gate, so
// Pending -> Cooked is accepted.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Clone returns a deep copy that shares no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	c.driverID = o.DriverID()
	c.items = cloneItems(o.items)
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParty(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = cloneItems(items)
	return nil
}

func (o *Order) setTotalPrice(totalPrice decimal.Decimal) error {
	if totalPrice.IsNegative() {
		return errs.NewValueIsOutOfRangeError("totalPrice", totalPrice, 0, "unbounded")
	}
	o.totalPrice = totalPrice
	return nil
}
