package ports

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
)

// TokenVerifier turns a bearer credential into the subject user ID.
// Malformed, expired or badly signed tokens yield an error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (kernel.UUID, error)
}

// TokenIssuer mints a credential for userID.
type TokenIssuer interface {
	Sign(ctx context.Context, userID kernel.UUID) (string, error)
}
