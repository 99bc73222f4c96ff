package services_test

import (
	"testing"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, id kernel.UUID, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(id, role)
	require.NoError(t, err)
	return u
}

func newOrder(t *testing.T, customerID, ownerID kernel.UUID, driverID *kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), ownerID,
		driverID, []order.Item{item}, decimal.NewFromInt(10), order.Pending, time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderPolicy_CanSee(t *testing.T) {
	policy := services.NewOrderPolicy()
	customerID, ownerID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	o := newOrder(t, customerID, ownerID, &driverID)

	tests := []struct {
		name string
		user *user.User
		want bool
	}{
		{"customer", newUser(t, customerID, user.Client), true},
		{"owner", newUser(t, ownerID, user.Owner), true},
		{"driver", newUser(t, driverID, user.Driver), true},
		{"other client", newUser(t, kernel.NewUUID(), user.Client), false},
		{"other owner", newUser(t, kernel.NewUUID(), user.Owner), false},
		{"other driver", newUser(t, kernel.NewUUID(), user.Driver), false},
		{"client with owner id", newUser(t, ownerID, user.Client), false},
		{"client with driver id", newUser(t, driverID, user.Client), false},
		{"owner with customer id", newUser(t, customerID, user.Owner), false},
		{"driver with customer id", newUser(t, customerID, user.Driver), false},
		{"nil user", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanSee(tt.user, o))
		})
	}

	t.Run("driver cannot see untaken order", func(t *testing.T) {
		untaken := newOrder(t, customerID, ownerID, nil)
		assert.False(t, policy.CanSee(newUser(t, driverID, user.Driver), untaken))
	})

	t.Run("nil order", func(t *testing.T) {
		assert.False(t, policy.CanSee(newUser(t, customerID, user.Client), nil))
	})
}

func TestOrderPolicy_CanEdit(t *testing.T) {
	policy := services.NewOrderPolicy()
	client := newUser(t, kernel.NewUUID(), user.Client)
	owner := newUser(t, kernel.NewUUID(), user.Owner)
	driver := newUser(t, kernel.NewUUID(), user.Driver)

	allowed := map[user.Role][]order.Status{
		user.Owner:  {order.Cooking, order.Cooked},
		user.Driver: {order.PickedUp, order.Delivered},
	}

	for _, u := range []*user.User{client, owner, driver} {
		for _, target := range append(order.Statuses(), order.Unknown) {
			want := false
			for _, s := range allowed[u.Role()] {
				if s == target {
					want = true
				}
			}
			assert.Equal(t, want, policy.CanEdit(u, target), "%s -> %s", u.Role(), target)
		}
		assert.Equal(t, allowed[u.Role()], policy.AllowedTargets(u.Role()))
	}

	assert.False(t, policy.CanEdit(nil, order.Cooked))
}
