package services_test

import (
	"testing"

	"bakehouse/internal/core/domain/services"
	"bakehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityChecker_Check(t *testing.T) {
	checker := services.NewCapacityChecker()

	t.Run("should accept proposal that fits", func(t *testing.T) {
		check, err := checker.Check(90, 5, 100)

		require.NoError(t, err)
		assert.True(t, check.HasCapacity)
		assert.Equal(t, 90, check.CurrentUnits)
		assert.Equal(t, 5, check.ProposedUnits)
		assert.Equal(t, 100, check.MaxUnits)
		assert.Equal(t, 10, check.AvailableUnits)
		assert.InDelta(t, 90.0, check.OccupationPercent, 0.0001)
	})

	t.Run("should accept proposal that exactly fills the day", func(t *testing.T) {
		check, err := checker.Check(90, 10, 100)

		require.NoError(t, err)
		assert.True(t, check.HasCapacity)
		assert.Equal(t, 10, check.AvailableUnits)
	})

	t.Run("should reject proposal that overshoots by one", func(t *testing.T) {
		check, err := checker.Check(90, 11, 100)

		require.NoError(t, err)
		assert.False(t, check.HasCapacity)
		assert.Equal(t, 10, check.AvailableUnits)
	})

	t.Run("should reject any proposal on a blocked day", func(t *testing.T) {
		check, err := checker.Check(0, 1, 0)

		require.NoError(t, err)
		assert.False(t, check.HasCapacity)
		assert.Equal(t, 0, check.AvailableUnits)
		assert.Zero(t, check.OccupationPercent)
	})

	t.Run("should handle over-booked days from force-accepted orders", func(t *testing.T) {
		check, err := checker.Check(120, 1, 100)

		require.NoError(t, err)
		assert.False(t, check.HasCapacity)
		assert.Equal(t, 0, check.AvailableUnits, "available never goes negative")
		assert.InDelta(t, 120.0, check.OccupationPercent, 0.0001)
	})

	t.Run("should accept proposal on an empty day", func(t *testing.T) {
		check, err := checker.Check(0, 30, 100)

		require.NoError(t, err)
		assert.True(t, check.HasCapacity)
		assert.Equal(t, 100, check.AvailableUnits)
		assert.Zero(t, check.OccupationPercent)
	})

	t.Run("should reject non-positive proposed units", func(t *testing.T) {
		for _, proposed := range []int{0, -1} {
			_, err := checker.Check(10, proposed, 100)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "proposedUnits")
		}
	})

	t.Run("should reject negative current units", func(t *testing.T) {
		_, err := checker.Check(-1, 5, 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currentUnits")
	})

	t.Run("should reject negative limit", func(t *testing.T) {
		_, err := checker.Check(0, 5, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "maxUnits")
	})

	t.Run("should be idempotent", func(t *testing.T) {
		first, err := checker.Check(42, 7, 100)
		require.NoError(t, err)

		second, err := checker.Check(42, 7, 100)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
