package restaurant

import (
	"errors"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

const (
	minNameLength = 1
	maxNameLength = 100
)

// Restaurant is owned by a single Owner. The owner ID is what order
// visibility and PENDING_ORDER routing are keyed on.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewRestaurant validates the identifiers and the name. Address is optional.
func NewRestaurant(id, ownerID kernel.UUID, name, address string) (*Restaurant, error) {
	r := &Restaurant{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
	); err != nil {
		return nil, err
	}
	r.address = strings.TrimSpace(address)

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

// IsOwnedBy reports whether userID owns the restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := len([]rune(name)); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, minNameLength, maxNameLength)
	}
	r.name = name
	return nil
}
