package user

import (
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

// User is the authenticated principal as seen by the ordering domain.
// Account management lives elsewhere, so User only carries what
// authorization needs: who the caller is and which role they hold.
type User struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// ErrUserIsNotConstructed is returned by Validate on a zero-value User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

func NewUser(id kernel.UUID, role Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Role() Role {
	return u.role
}

// Is reports whether the user holds role.
func (u *User) Is(role Role) bool {
	return u != nil && u.role == role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
