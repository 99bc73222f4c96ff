package commands

import (
	"errors"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant owned by ownerID.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	address      string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	restaurantID, ownerID kernel.UUID,
	name, address string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) Address() string {
	return c.address
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
