package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// Guard authorizes operations against their declared role set.
type Guard struct {
	resolver IdentityResolver
	logger   *slog.Logger
}

func NewGuard(resolver IdentityResolver, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{resolver: resolver, logger: logger.With("component", "auth-guard")}
}

// Authorize decides whether the caller holding credential may run op.
//
// Public operations pass untouched. Otherwise the credential must be present
// and resolve to a user, even for RequireAny. The user is attached to the
// returned context (once per request: a context already carrying a user is
// not resolved again) and must then satisfy op's role set.
//
// Denials are UnauthenticatedError or ForbiddenError. Authorize never panics
// on a bad credential.
func (g *Guard) Authorize(ctx context.Context, op Operation, credential string) (context.Context, error) {
	if op.IsPublic() {
		return ctx, nil
	}

	u, ok := UserFromContext(ctx)
	if !ok {
		if credential == "" {
			return ctx, errs.NewUnauthenticatedError("missing credential")
		}

		resolved, err := g.resolver.Resolve(ctx, credential)
		if err != nil {
			g.logger.DebugContext(ctx, "credential rejected", "operation", op.Name, "error", err)
			if !errors.Is(err, errs.ErrUnauthenticated) {
				err = errs.NewUnauthenticatedErrorWithCause("credential rejected", err)
			}
			return ctx, err
		}
		u = resolved
		ctx = WithUser(ctx, u)
	}

	if !op.Admits(u.Role()) {
		return ctx, errs.NewForbiddenError(op.Name)
	}

	return ctx, nil
}
