package commands

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for a Client. The order ID is chosen by
// the caller so it can be returned without another read.
//
// Example:
//
//	item, _ := order.NewItem(dishID, []order.ItemOption{{Name: "Size", Choice: "Large"}})
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, restaurantID, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []order.Item

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// DishIDs returns the distinct dishes referenced by the items, in first-seen order.
func (c CreateOrderCommand) DishIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.DishID()]; ok {
			continue
		}
		seen[item.DishID()] = struct{}{}
		ids = append(ids, item.DishID())
	}
	return ids
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]order.Item(nil), items...)
	return nil
}
