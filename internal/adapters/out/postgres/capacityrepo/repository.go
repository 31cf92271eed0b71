package capacityrepo

import (
	"context"
	"errors"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCapacityRepository implements CapacityRepository using GORM.
type GormCapacityRepository struct {
	db *gorm.DB
}

// NewGormCapacityRepository creates a new GORM capacity repository.
func NewGormCapacityRepository(db *gorm.DB) *GormCapacityRepository {
	return &GormCapacityRepository{db: db}
}

// Get retrieves the capacity record for a date.
// Returns an ObjectNotFoundError when no record exists for the date.
func (r *GormCapacityRepository) Get(ctx context.Context, date kernel.Date) (*capacity.DayCapacity, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dto DayCapacityDTO
	if err := r.db.WithContext(ctx).First(&dto, "date = ?", date.Time()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("day capacity", date.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetRange retrieves all capacity records with dates in [from, to] inclusive,
// ordered by date. Days without a record are simply absent from the result.
func (r *GormCapacityRepository) GetRange(
	ctx context.Context,
	from, to kernel.Date,
) ([]*capacity.DayCapacity, error) {
	var dtos []DayCapacityDTO
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from.Time(), to.Time()).
		Order("date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*capacity.DayCapacity, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Upsert creates or replaces the capacity record for the record's date.
func (r *GormCapacityRepository) Upsert(ctx context.Context, aggregate *capacity.DayCapacity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"max_units", "notes"}),
		}).
		Create(&dto).Error
}

// LockDate takes a transaction-scoped advisory lock keyed on the date,
// serializing concurrent admissions for the same delivery day. The lock is
// released automatically when the surrounding transaction ends.
func (r *GormCapacityRepository) LockDate(ctx context.Context, date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", date.String()).Error
}
