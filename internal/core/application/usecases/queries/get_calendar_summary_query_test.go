package queries_test

import (
	"testing"

	"bakehouse/internal/core/application/usecases/queries"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCalendarSummaryQuery_Valid(t *testing.T) {
	from, err := kernel.DateFromString("2026-09-01")
	require.NoError(t, err)
	to, err := kernel.DateFromString("2026-09-30")
	require.NoError(t, err)

	query, err := queries.NewGetCalendarSummaryQuery(from, to)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.True(t, query.From().IsEqual(from))
	assert.True(t, query.To().IsEqual(to))
}

func TestNewGetCalendarSummaryQuery_SingleDay(t *testing.T) {
	day, err := kernel.DateFromString("2026-09-10")
	require.NoError(t, err)

	query, err := queries.NewGetCalendarSummaryQuery(day, day)
	require.NoError(t, err)
	assert.True(t, query.From().IsEqual(query.To()))
}

func TestNewGetCalendarSummaryQuery_FullYear(t *testing.T) {
	from, err := kernel.DateFromString("2028-01-01")
	require.NoError(t, err)
	to, err := kernel.DateFromString("2028-12-31")
	require.NoError(t, err)

	// 2028 is a leap year, so this range is exactly 366 days.
	_, err = queries.NewGetCalendarSummaryQuery(from, to)
	require.NoError(t, err)
}

func TestNewGetCalendarSummaryQuery_InvalidInputs(t *testing.T) {
	from, err := kernel.DateFromString("2026-09-01")
	require.NoError(t, err)
	to, err := kernel.DateFromString("2026-09-30")
	require.NoError(t, err)

	t.Run("should reject zero from date", func(t *testing.T) {
		_, err := queries.NewGetCalendarSummaryQuery(kernel.Date{}, to)
		require.Error(t, err)
	})

	t.Run("should reject zero to date", func(t *testing.T) {
		_, err := queries.NewGetCalendarSummaryQuery(from, kernel.Date{})
		require.Error(t, err)
	})

	t.Run("should reject inverted range", func(t *testing.T) {
		_, err := queries.NewGetCalendarSummaryQuery(to, from)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject range longer than a year", func(t *testing.T) {
		farEnd := from.AddDays(366)
		_, err := queries.NewGetCalendarSummaryQuery(from, farEnd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGetCalendarSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCalendarSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCalendarSummaryQueryIsNotConstructed)
}
