package ports

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
)

// UserRepository is the read side of the identity subsystem. Add exists for
// seeding and tests; accounts are managed elsewhere.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
