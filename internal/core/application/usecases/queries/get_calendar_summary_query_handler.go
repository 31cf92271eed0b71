package queries

import (
	"context"
	"time"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCalendarSummaryQueryHandler produces one DailyOrderSummary per
// calendar date in the requested range, including dates with zero orders,
// so calendar views never special-case missing entries.
//
// The whole range is aggregated in two batch queries (order tallies and
// capacity overrides) rather than one capacity check per day.
type GetCalendarSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetCalendarSummaryQueryHandler creates a handler for calendar summaries.
// Requires a GORM database connection for query execution.
func NewGetCalendarSummaryQueryHandler(db *gorm.DB) GetCalendarSummaryQueryHandler {
	return GetCalendarSummaryQueryHandler{db: db}
}

// Handle executes the summary aggregation over the query's range.
// Cancelled orders contribute nothing: cancellation releases a day's units.
func (h GetCalendarSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCalendarSummaryQuery,
) ([]DailyOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	totals, counts, err := h.loadOrderTallies(ctx, query.From(), query.To())
	if err != nil {
		return nil, err
	}

	limits, err := h.loadCapacityLimits(ctx, query.From(), query.To())
	if err != nil {
		return nil, err
	}

	summaries := make([]DailyOrderSummary, 0, query.From().DaysUntil(query.To())+1)
	for date := query.From(); !date.After(query.To()); date = date.Next() {
		maxUnits := capacity.DefaultMaxUnits
		if limit, ok := limits[date.String()]; ok {
			maxUnits = limit
		}

		summaries = append(summaries, DailyOrderSummary{
			Date:       date,
			TotalUnits: totals[date.String()],
			MaxUnits:   maxUnits,
			OrderCount: counts[date.String()],
		})
	}

	return summaries, nil
}

// loadOrderTallies aggregates units and order counts per delivery date in
// one pass over the range, keyed by the date's canonical string form.
func (h GetCalendarSummaryQueryHandler) loadOrderTallies(
	ctx context.Context,
	from, to kernel.Date,
) (map[string]int, map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.delivery_date,
			COALESCE(SUM(i.quantity), 0),
			COUNT(DISTINCT o.id)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.delivery_date BETWEEN ? AND ?
		  AND o.status != ?
		GROUP BY o.delivery_date
	`, from.Time(), to.Time(), order.Cancelled).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	counts := make(map[string]int)
	for rows.Next() {
		var deliveryDate time.Time
		var units, orderCount int

		if err = rows.Scan(&deliveryDate, &units, &orderCount); err != nil {
			return nil, nil, err
		}

		key := kernel.DateFromTime(deliveryDate).String()
		totals[key] = units
		counts[key] = orderCount
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return totals, counts, nil
}

// loadCapacityLimits fetches the configured limits for the range, keyed by
// the date's canonical string form. Days without a record stay absent.
func (h GetCalendarSummaryQueryHandler) loadCapacityLimits(
	ctx context.Context,
	from, to kernel.Date,
) (map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT date, max_units
		FROM daily_capacities
		WHERE date BETWEEN ? AND ?
	`, from.Time(), to.Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	limits := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var maxUnits int

		if err = rows.Scan(&date, &maxUnits); err != nil {
			return nil, err
		}

		limits[kernel.DateFromTime(date).String()] = maxUnits
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return limits, nil
}
