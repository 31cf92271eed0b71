package orderrepo

import (
	"context"
	"errors"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items are replaced
// wholesale since the aggregate owns them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// preloadItemsOrdered keeps line items in insertion order, which is the
// order the customer stated them in.
func preloadItemsOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items", preloadItemsOrdered).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDateRange retrieves all orders with a delivery date in [from, to]
// inclusive, ordered by delivery date.
func (r *GormOrderRepository) GetByDateRange(ctx context.Context, from, to kernel.Date) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItemsOrdered).
		Where("delivery_date BETWEEN ? AND ?", from.Time(), to.Time()).
		Order("delivery_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// SumActiveUnits tallies item units booked on a delivery date across all
// non-cancelled orders. A non-nil excludeID leaves that order's own units
// out of the tally.
func (r *GormOrderRepository) SumActiveUnits(
	ctx context.Context,
	date kernel.Date,
	excludeID *kernel.UUID,
) (int, error) {
	query := `
		SELECT COALESCE(SUM(i.quantity), 0)
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.delivery_date = ?
		  AND o.status != ?
	`
	args := []any{date.Time(), order.Cancelled}

	if excludeID != nil {
		query += " AND o.id != ?"
		args = append(args, excludeID.Bytes())
	}

	var units int
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&units).Error; err != nil {
		return 0, err
	}

	return units, nil
}
