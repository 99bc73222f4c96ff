package user_test

import (
	"testing"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		u, err := user.NewUser(id, user.Owner)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, user.Owner, u.Role())
		assert.True(t, u.Is(user.Owner))
		assert.False(t, u.Is(user.Driver))
	})

	t.Run("rejects zero id and unknown role together", func(t *testing.T) {
		u, err := user.NewUser(kernel.UUID{}, user.UnknownRole)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)

		var nilUser *user.User
		require.ErrorIs(t, nilUser.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("nil user holds no role", func(t *testing.T) {
		var u *user.User
		assert.False(t, u.Is(user.Client))
	})
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  user.Role
	}{
		{"Client", user.Client},
		{"owner", user.Owner},
		{"DRIVER", user.Driver},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := user.ParseRole(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParse(t, got.String()))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := user.ParseRole("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Unknown", user.Role(42).String())
	require.Error(t, user.Role(42).Validate())
}

func mustParse(t *testing.T, s string) user.Role {
	t.Helper()
	r, err := user.ParseRole(s)
	require.NoError(t, err)
	return r
}
