package commands

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand claims an order for a driver.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	driver  *user.User
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(driver *user.User, orderID kernel.UUID) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriver(driver),
		cmd.setOrderID(orderID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Driver() *user.User {
	return c.driver
}

func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *TakeOrderCommand) setDriver(driver *user.User) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	c.driver = driver
	return nil
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
