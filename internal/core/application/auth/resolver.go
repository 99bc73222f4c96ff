package auth

import (
	"context"
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// IdentityResolver turns a credential into a user.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*user.User, error)
}

// TokenResolver verifies the token and loads its subject.
type TokenResolver struct {
	verifier ports.TokenVerifier
	users    ports.UserRepository
}

func NewTokenResolver(verifier ports.TokenVerifier, users ports.UserRepository) *TokenResolver {
	return &TokenResolver{verifier: verifier, users: users}
}

// Resolve fails with an UnauthenticatedError for every kind of failure:
// a bad token, a subject that does not exist, or a lookup error.
func (r *TokenResolver) Resolve(ctx context.Context, credential string) (*user.User, error) {
	userID, err := r.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, errs.NewUnauthenticatedErrorWithCause("invalid credential", err)
	}

	u, err := r.users.Get(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnauthenticatedErrorWithCause("unknown user", err)
	}
	if err != nil {
		return nil, errs.NewUnauthenticatedErrorWithCause("user lookup failed", err)
	}

	return u, nil
}
