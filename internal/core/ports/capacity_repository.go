package ports

import (
	"context"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
)

// CapacityRepository defines the persistence contract for per-day capacity
// records. Absence of a record for a date is a valid state; callers resolve
// it to the system fallback.
type CapacityRepository interface {
	// Get retrieves the capacity record for a date.
	// Returns an ObjectNotFoundError when no record exists for the date.
	Get(ctx context.Context, date kernel.Date) (*capacity.DayCapacity, error)

	// GetRange retrieves all capacity records with dates in [from, to]
	// inclusive. Days without a record are simply absent from the result.
	GetRange(ctx context.Context, from, to kernel.Date) ([]*capacity.DayCapacity, error)

	// Upsert creates or replaces the capacity record for the record's date.
	Upsert(ctx context.Context, aggregate *capacity.DayCapacity) error

	// LockDate serializes concurrent admissions for a delivery date within
	// the current transaction. Two submissions for the same date cannot
	// both pass the capacity check and insert; the second blocks until the
	// first commits and then sees its units. The lock is released when the
	// transaction ends.
	LockDate(ctx context.Context, date kernel.Date) error
}
