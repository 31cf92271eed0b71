package queries

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

// maxSummaryRangeDays caps a single summary request. A year of days is
// plenty for every calendar view and keeps a bad request from scanning the
// whole table.
const maxSummaryRangeDays = 366

var (
	ErrGetCalendarSummaryQueryIsNotConstructed = errors.New(
		"GetCalendarSummaryQuery must be created via NewGetCalendarSummaryQuery constructor",
	)
)

// GetCalendarSummaryQuery requests per-day occupancy aggregates for a
// calendar date range, both bounds inclusive.
//
// Example:
//
//	query, err := NewGetCalendarSummaryQuery(monthStart, monthEnd)
//	if err != nil {
//	    return fmt.Errorf("invalid calendar range: %w", err)
//	}
//
//	summaries, err := handler.Handle(ctx, query)
//	for _, s := range summaries {
//	    fmt.Printf("%s: %d/%d units over %d orders\n", s.Date, s.TotalUnits, s.MaxUnits, s.OrderCount)
//	}
type GetCalendarSummaryQuery struct { //nolint:recvcheck //using for validation
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

// NewGetCalendarSummaryQuery creates a calendar summary query.
// Validates that both dates are valid, from does not fall after to, and
// the range does not exceed maxSummaryRangeDays.
func NewGetCalendarSummaryQuery(from, to kernel.Date) (GetCalendarSummaryQuery, error) {
	query := GetCalendarSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRange(from, to); err != nil {
		return GetCalendarSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCalendarSummaryQueryIsNotConstructed if validation fails.
func (q GetCalendarSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCalendarSummaryQueryIsNotConstructed)
}

// From returns the first date of the range.
func (q GetCalendarSummaryQuery) From() kernel.Date {
	return q.from
}

// To returns the last date of the range.
func (q GetCalendarSummaryQuery) To() kernel.Date {
	return q.to
}

func (q *GetCalendarSummaryQuery) setRange(from, to kernel.Date) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.After(to) {
		return errs.NewValueIsInvalidErrorWithCause("dateRange",
			fmt.Errorf("from %s falls after to %s", from, to))
	}
	if days := from.DaysUntil(to) + 1; days > maxSummaryRangeDays {
		return errs.NewValueIsOutOfRangeError("dateRange", days, 1, maxSummaryRangeDays)
	}

	q.from = from
	q.to = to
	return nil
}

// DailyOrderSummary is the per-day aggregate consumed by calendar and
// report views. It is derived on read from the order table, never stored,
// so it cannot drift from the orders themselves.
type DailyOrderSummary struct {
	// Date is the production day the summary describes.
	Date kernel.Date

	// TotalUnits is the sum of item quantities across the day's
	// non-cancelled orders.
	TotalUnits int

	// MaxUnits is the day's configured limit, or the system fallback.
	MaxUnits int

	// OrderCount is the number of non-cancelled orders on the day.
	OrderCount int
}
