package memory

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

var _ ports.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	tx access
}

// Add inserts or replaces u.
func (r *UserRepository) Add(ctx context.Context, u *user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := u.Validate(); err != nil {
		return err
	}

	return r.tx.write(func(t *tables) error {
		t.users.put(u.ID(), u)
		return nil
	})
}

func (r *UserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *user.User
	err := r.tx.read(func(t *tables) error {
		u, ok := t.users.get(id)
		if !ok {
			return errs.NewObjectNotFoundError("userID", id)
		}
		found = u
		return nil
	})
	return found, err
}
