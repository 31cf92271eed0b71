package order_test

import (
	"testing"

	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid parameters", func(t *testing.T) {
		item, err := order.NewItem("sourdough loaf", 3, decimal.NewFromFloat(8.50))

		require.NoError(t, err)
		assert.Equal(t, "sourdough loaf", item.ProductName())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, decimal.NewFromFloat(8.50).Equal(item.UnitPrice()))
		require.NoError(t, item.Validate())
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		item, err := order.NewItem("birthday gift cookie", 1, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.UnitPrice().IsZero())
	})

	t.Run("should reject empty product name", func(t *testing.T) {
		_, err := order.NewItem("", 1, decimal.NewFromInt(5))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productName")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := order.NewItem("croissant", quantity, decimal.NewFromInt(4))

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should reject negative unit price", func(t *testing.T) {
		_, err := order.NewItem("croissant", 1, decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should collect all validation errors at once", func(t *testing.T) {
		_, err := order.NewItem("", 0, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unitPrice")
	})
}

func TestItem_Subtotal(t *testing.T) {
	t.Run("should multiply quantity by unit price", func(t *testing.T) {
		item, err := order.NewItem("brigadeiro box", 4, decimal.NewFromFloat(12.25))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(49).Equal(item.Subtotal()))
	})

	t.Run("should keep decimal precision", func(t *testing.T) {
		item, err := order.NewItem("macaron", 3, decimal.RequireFromString("2.35"))

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("7.05").Equal(item.Subtotal()))
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should reject zero-value item", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}
