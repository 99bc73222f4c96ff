package order_test

import (
	"testing"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	dishID := kernel.NewUUID()

	t.Run("without options", func(t *testing.T) {
		item, err := order.NewItem(dishID, nil)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.DishID().IsEqual(dishID))
		assert.Empty(t, item.Options())
	})

	t.Run("options are copied", func(t *testing.T) {
		options := []order.ItemOption{{Name: "Size", Choice: "Large"}}
		item, err := order.NewItem(dishID, options)
		require.NoError(t, err)

		options[0].Choice = "Small"
		got := item.Options()
		got[0].Name = "Changed"

		assert.Equal(t, []order.ItemOption{{Name: "Size", Choice: "Large"}}, item.Options())
	})

	t.Run("requires dish", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires option names", func(t *testing.T) {
		_, err := order.NewItem(dishID, []order.ItemOption{{Name: "", Choice: "Large"}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, order.Item{}.Validate(), order.ErrItemIsNotConstructed)
	})
}
