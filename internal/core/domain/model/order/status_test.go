package order_test

import (
	"testing"

	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, order.Status(0), order.Unknown)
	assert.Equal(t, []order.Status{
		order.Pending, order.Cooking, order.Cooked, order.PickedUp, order.Delivered,
	}, order.Statuses())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
		require.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid)
	}
}

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:     "Unknown",
		order.Pending:     "Pending",
		order.Cooking:     "Cooking",
		order.Cooked:      "Cooked",
		order.PickedUp:    "PickedUp",
		order.Delivered:   "Delivered",
		order.Status(999): "Unknown",
	}
	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range order.Statuses() {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := order.ParseStatus("pickedup")
	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, parsed)

	_, err = order.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("")
	require.Error(t, err)
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.False(t, order.PickedUp.IsFinal())
}
