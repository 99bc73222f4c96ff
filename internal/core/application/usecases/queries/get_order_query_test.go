package queries_test

import (
	"testing"

	"github.com/beliemun/uber-backend/internal/core/application/usecases/queries"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	client := mustUser(t, user.Client)
	owner := mustUser(t, user.Owner)
	o := storedOrder(t, client.ID(), owner.ID(), nil)

	tests := []struct {
		name    string
		viewer  *user.User
		wantErr error
	}{
		{name: "customer sees own order", viewer: client},
		{name: "owner sees order of their restaurant", viewer: owner},
		{name: "another client is forbidden", viewer: mustUser(t, user.Client), wantErr: errs.ErrForbidden},
		{name: "driver without the order is forbidden", viewer: mustUser(t, user.Driver), wantErr: errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockOrderRepository{}
			repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

			q, err := queries.NewGetOrderQuery(tt.viewer, o.ID())
			require.NoError(t, err)

			got, err := queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), q)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, o.IsEqual(got))
			assert.Equal(t, order.Pending, got.Status())
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		repo := &MockOrderRepository{}
		id := kernel.NewUUID()
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once()

		q, err := queries.NewGetOrderQuery(client, id)
		require.NoError(t, err)

		_, err = queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), q)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero order ID is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(client, kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		_, err := queries.NewGetOrderQueryHandler(&MockOrderRepository{}).Handle(t.Context(), queries.GetOrderQuery{})
		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}
