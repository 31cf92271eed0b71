package queries

import (
	"context"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/core/domain/services"

	"gorm.io/gorm"
)

// CheckCapacityQueryHandler computes an admission preview for a delivery
// date. It resolves the day's limit (fallback when no record exists), sums
// item quantities across the day's non-cancelled orders, and delegates the
// arithmetic to the CapacityChecker domain service.
//
// The result reflects the database at read time; it carries no lock, so
// only the admission workflow's own in-transaction check is authoritative.
type CheckCapacityQueryHandler struct {
	db      *gorm.DB
	checker services.CapacityChecker
}

// NewCheckCapacityQueryHandler creates a handler for capacity previews.
// Requires a GORM database connection for query execution.
func NewCheckCapacityQueryHandler(db *gorm.DB) CheckCapacityQueryHandler {
	return CheckCapacityQueryHandler{
		db:      db,
		checker: services.NewCapacityChecker(),
	}
}

// Handle executes the capacity check for the query's date.
func (h CheckCapacityQueryHandler) Handle(
	ctx context.Context,
	query CheckCapacityQuery,
) (services.CapacityCheck, error) {
	if err := query.Validate(); err != nil {
		return services.CapacityCheck{}, err
	}

	maxUnits := capacity.DefaultMaxUnits
	var configured int
	result := h.db.WithContext(ctx).Raw(`
		SELECT max_units
		FROM daily_capacities
		WHERE date = ?
	`, query.Date().Time()).Scan(&configured)
	if result.Error != nil {
		return services.CapacityCheck{}, result.Error
	}
	if result.RowsAffected > 0 {
		maxUnits = configured
	}

	sql := `
		SELECT COALESCE(SUM(i.quantity), 0)
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.delivery_date = ?
		  AND o.status != ?
	`
	args := []any{query.Date().Time(), order.Cancelled}
	if excludeID := query.ExcludeOrderID(); excludeID != nil {
		sql += " AND o.id != ?"
		args = append(args, excludeID.Bytes())
	}

	var currentUnits int
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&currentUnits).Error; err != nil {
		return services.CapacityCheck{}, err
	}

	return h.checker.Check(currentUnits, query.ProposedUnits(), maxUnits)
}
