package memory_test

import (
	"testing"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, customerID, ownerID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), []order.ItemOption{{Name: "Size", Choice: "L"}})
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), ownerID,
		[]order.Item{item}, decimal.RequireFromString("12.50"), createdAt)
	require.NoError(t, err)
	return o
}
