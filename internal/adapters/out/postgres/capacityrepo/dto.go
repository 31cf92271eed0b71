// Package capacityrepo provides data transfer objects and mapping functions
// for per-day capacity persistence. A row exists only for dates with an
// explicit limit; absent dates resolve to the system default.
package capacityrepo

import (
	"time"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
)

// DayCapacityDTO represents the database structure for persisting per-day
// capacity records. The calendar date is the natural primary key.
type DayCapacityDTO struct {
	Date     time.Time `gorm:"type:date;primaryKey"`
	MaxUnits int
	Notes    string
}

// TableName specifies the database table name for capacity records.
func (DayCapacityDTO) TableName() string {
	return "daily_capacities"
}

// fromDomain converts a capacity domain aggregate to its database representation.
func fromDomain(aggregate *capacity.DayCapacity) DayCapacityDTO {
	return DayCapacityDTO{
		Date:     aggregate.Date().Time(),
		MaxUnits: aggregate.MaxUnits(),
		Notes:    aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a capacity domain aggregate.
func toDomain(dto DayCapacityDTO) (*capacity.DayCapacity, error) {
	return capacity.NewDayCapacity(kernel.DateFromTime(dto.Date), dto.MaxUnits, dto.Notes)
}
