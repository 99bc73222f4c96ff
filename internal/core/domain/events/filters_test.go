package events_test

import (
	"testing"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(t *testing.T, driverID *kernel.UUID) events.OrderEvent {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), []order.ItemOption{{Name: "Size", Choice: "Large"}})
	require.NoError(t, err)

	status := order.Pending
	if driverID != nil {
		status = order.PickedUp
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		driverID, []order.Item{item}, decimal.NewFromInt(12), status, time.Now())
	require.NoError(t, err)

	return events.NewOrderEvent(o)
}

func TestNewOrderEvent(t *testing.T) {
	driverID := kernel.NewUUID()
	e := newEvent(t, &driverID)

	assert.Equal(t, "PickedUp", e.Status)
	assert.True(t, decimal.NewFromInt(12).Equal(e.TotalPrice))
	require.NotNil(t, e.DriverID)
	assert.True(t, e.DriverID.IsEqual(driverID))
	require.Len(t, e.Items, 1)
	assert.Equal(t, []events.ItemOption{{Name: "Size", Choice: "Large"}}, e.Items[0].Options)
}

func TestPendingOrderFilter(t *testing.T) {
	e := newEvent(t, nil)

	assert.True(t, events.PendingOrderFilter(e.OwnerID)(e))
	assert.False(t, events.PendingOrderFilter(kernel.NewUUID())(e))
	assert.False(t, events.PendingOrderFilter(e.CustomerID)(e))
}

func TestCookedOrderFilter(t *testing.T) {
	assert.True(t, events.CookedOrderFilter()(newEvent(t, nil)))
}

func TestUpdateOrderFilter(t *testing.T) {
	driverID := kernel.NewUUID()
	e := newEvent(t, &driverID)

	tests := []struct {
		name    string
		userID  kernel.UUID
		watched kernel.UUID
		want    bool
	}{
		{"customer watching", e.CustomerID, e.ID, true},
		{"owner watching", e.OwnerID, e.ID, true},
		{"driver watching", driverID, e.ID, true},
		{"stranger watching", kernel.NewUUID(), e.ID, false},
		{"customer watching another order", e.CustomerID, kernel.NewUUID(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, events.UpdateOrderFilter(tt.userID, tt.watched)(e))
		})
	}

	t.Run("driver of another order", func(t *testing.T) {
		untaken := newEvent(t, nil)
		assert.False(t, events.UpdateOrderFilter(driverID, untaken.ID)(untaken))
	})
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "PENDING_ORDER", string(events.PendingOrder))
	assert.Equal(t, "COOKED_ORDER", string(events.CookedOrder))
	assert.Equal(t, "UPDATE_ORDER", string(events.UpdateOrder))
	assert.Len(t, events.Topics(), 3)
}
