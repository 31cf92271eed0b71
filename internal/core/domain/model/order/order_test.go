package order_test

import (
	"testing"
	"time"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(name, quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func mustDate(t *testing.T, year int, month time.Month, day int) kernel.Date {
	t.Helper()
	date, err := kernel.NewDate(year, month, day)
	require.NoError(t, err)
	return date
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	items := []order.Item{
		mustItem(t, "sourdough loaf", 2, "8.50"),
		mustItem(t, "brigadeiro box", 1, "24.00"),
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Ana Souza", "555-0101", "ana@example.com",
		items,
		mustDate(t, 2026, time.September, 10),
		"15:00",
		order.SourceWhatsApp,
		"ring the back bell",
		time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with valid parameters", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "Ana Souza", o.CustomerName())
		assert.Equal(t, "555-0101", o.CustomerPhone())
		assert.Equal(t, "ana@example.com", o.CustomerEmail())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.SourceWhatsApp, o.Source())
		assert.Equal(t, "15:00", o.DeliveryTime())
		assert.Equal(t, "ring the back bell", o.Notes())
		assert.False(t, o.ForceAccepted())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should start in Pending status", func(t *testing.T) {
		o := newTestOrder(t)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should compute total price from items", func(t *testing.T) {
		o := newTestOrder(t)

		// 2 x 8.50 + 1 x 24.00
		assert.True(t, decimal.RequireFromString("41.00").Equal(o.TotalPrice()),
			"expected 41.00, got %s", o.TotalPrice())
	})

	t.Run("should compute total units from item quantities", func(t *testing.T) {
		o := newTestOrder(t)
		assert.Equal(t, 3, o.TotalUnits())
	})

	t.Run("should allow empty delivery time", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			"Ana Souza", "", "",
			[]order.Item{mustItem(t, "croissant", 1, "4.00")},
			mustDate(t, 2026, time.September, 10),
			"",
			order.SourceManual,
			"",
			time.Now(),
		)

		require.NoError(t, err)
		assert.Empty(t, o.DeliveryTime())
	})

	t.Run("should reject empty customer name", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			"", "", "",
			[]order.Item{mustItem(t, "croissant", 1, "4.00")},
			mustDate(t, 2026, time.September, 10),
			"",
			order.SourceManual,
			"",
			time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty items list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			"Ana Souza", "", "",
			nil,
			mustDate(t, 2026, time.September, 10),
			"",
			order.SourceManual,
			"",
			time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed delivery time", func(t *testing.T) {
		for _, deliveryTime := range []string{"25:00", "3pm", "15h00", "15:60"} {
			_, err := order.NewOrder(
				kernel.NewUUID(),
				"Ana Souza", "", "",
				[]order.Item{mustItem(t, "croissant", 1, "4.00")},
				mustDate(t, 2026, time.September, 10),
				deliveryTime,
				order.SourceManual,
				"",
				time.Now(),
			)

			require.Error(t, err, "delivery time %q must be rejected", deliveryTime)
		}
	})

	t.Run("should reject invalid source", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			"Ana Souza", "", "",
			[]order.Item{mustItem(t, "croissant", 1, "4.00")},
			mustDate(t, 2026, time.September, 10),
			"",
			order.Source("telegram"),
			"",
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with any valid status", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(48 * time.Hour)

		o, err := order.RestoreOrder(
			id,
			"Ana Souza", "555-0101", "ana@example.com",
			[]order.Item{mustItem(t, "sourdough loaf", 2, "8.50")},
			mustDate(t, 2026, time.September, 10),
			"15:00",
			order.Ready,
			order.SourceSite,
			true,
			"",
			createdAt, updatedAt,
		)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Ready, o.Status())
		assert.True(t, o.ForceAccepted())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			"Ana Souza", "", "",
			[]order.Item{mustItem(t, "croissant", 1, "4.00")},
			mustDate(t, 2026, time.September, 10),
			"",
			order.Unknown,
			order.SourceManual,
			false,
			"",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the production workflow and stamp updates", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Date(2026, time.September, 9, 8, 0, 0, 0, time.UTC)

		require.NoError(t, o.ChangeStatus(order.InProduction, now))
		assert.Equal(t, order.InProduction, o.Status())
		assert.Equal(t, now, o.UpdatedAt())

		require.NoError(t, o.ChangeStatus(order.Ready, now.Add(time.Hour)))
		require.NoError(t, o.ChangeStatus(order.Delivered, now.Add(2*time.Hour)))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject illegal transitions", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Delivered, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status(), "status must not change on rejection")
	})

	t.Run("should record delivered event on reaching Delivered", func(t *testing.T) {
		o := newTestOrder(t)
		deliveredAt := time.Date(2026, time.September, 10, 16, 0, 0, 0, time.UTC)

		require.NoError(t, o.ChangeStatus(order.InProduction, time.Now()))
		require.NoError(t, o.ChangeStatus(order.Ready, time.Now()))
		require.NoError(t, o.ChangeStatus(order.Delivered, deliveredAt))

		events := o.TakeEvents()
		require.Len(t, events, 1)

		delivered, ok := events[0].(order.OrderDeliveredEvent)
		require.True(t, ok)
		assert.Equal(t, "order.delivered", delivered.EventName())
		assert.True(t, delivered.OrderID.IsEqual(o.ID()))
		assert.Equal(t, deliveredAt, delivered.OccurredAt)

		assert.Empty(t, o.TakeEvents(), "second drain must be empty")
	})

	t.Run("should not record events on other transitions", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cancelled, time.Now()))

		assert.Empty(t, o.TakeEvents())
	})
}

func TestOrder_Revise(t *testing.T) {
	t.Run("should replace intake fields and recompute totals", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Date(2026, time.September, 2, 11, 0, 0, 0, time.UTC)
		newDate := mustDate(t, 2026, time.September, 12)

		err := o.Revise(
			"Bruna Lima", "555-0202", "bruna@example.com",
			[]order.Item{mustItem(t, "macaron", 10, "2.35")},
			newDate,
			"",
			order.SourceCorporate,
			"deliver to reception",
			now,
		)

		require.NoError(t, err)
		assert.Equal(t, "Bruna Lima", o.CustomerName())
		assert.True(t, o.DeliveryDate().IsEqual(newDate))
		assert.Equal(t, order.SourceCorporate, o.Source())
		assert.Equal(t, 10, o.TotalUnits())
		assert.True(t, decimal.RequireFromString("23.50").Equal(o.TotalPrice()))
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should reset force-accepted flag", func(t *testing.T) {
		o := newTestOrder(t)
		o.ForceAccept(time.Now())
		require.True(t, o.ForceAccepted())

		err := o.Revise(
			"Ana Souza", "", "",
			[]order.Item{mustItem(t, "croissant", 1, "4.00")},
			mustDate(t, 2026, time.September, 10),
			"",
			order.SourceManual,
			"",
			time.Now(),
		)

		require.NoError(t, err)
		assert.False(t, o.ForceAccepted())
	})

	t.Run("should keep status unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.InProduction, time.Now()))

		err := o.Revise(
			"Ana Souza", "", "",
			[]order.Item{mustItem(t, "croissant", 1, "4.00")},
			mustDate(t, 2026, time.September, 10),
			"",
			order.SourceManual,
			"",
			time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.InProduction, o.Status())
	})

	t.Run("should reject revision of terminal orders", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			o := newTestOrder(t)
			if terminal == order.Delivered {
				require.NoError(t, o.ChangeStatus(order.InProduction, time.Now()))
				require.NoError(t, o.ChangeStatus(order.Ready, time.Now()))
			}
			require.NoError(t, o.ChangeStatus(terminal, time.Now()))

			err := o.Revise(
				"Ana Souza", "", "",
				[]order.Item{mustItem(t, "croissant", 1, "4.00")},
				mustDate(t, 2026, time.September, 10),
				"",
				order.SourceManual,
				"",
				time.Now(),
			)

			require.Error(t, err)
			require.ErrorIs(t, err, order.ErrOrderIsTerminal)
		}
	})

	t.Run("should reject invalid replacement data", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Revise(
			"", "", "",
			nil,
			mustDate(t, 2026, time.September, 10),
			"",
			order.SourceManual,
			"",
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_ForceAccept(t *testing.T) {
	t.Run("should mark order as force accepted", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Date(2026, time.September, 3, 7, 0, 0, 0, time.UTC)

		o.ForceAccept(now)

		assert.True(t, o.ForceAccepted())
		assert.Equal(t, now, o.UpdatedAt())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero-value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
	})
}
