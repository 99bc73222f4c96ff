package auth

import (
	"context"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
)

type contextKey string

const userContextKey contextKey = "github.com/beliemun/uber-backend/internal/core/application/auth/user"

// WithUser attaches u to ctx. Attaching the same user twice returns ctx as is.
func WithUser(ctx context.Context, u *user.User) context.Context {
	if current, ok := UserFromContext(ctx); ok && current.ID().IsEqual(u.ID()) && current.Role() == u.Role() {
		return ctx
	}
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext returns the user attached by the Guard.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// ExtractBearer pulls the token out of an Authorization header value.
func ExtractBearer(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
