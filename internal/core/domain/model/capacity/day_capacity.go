package capacity

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"
)

// DefaultMaxUnits is the system-wide fallback applied to any production day
// without an explicit DayCapacity record. Absence of a record is a valid
// state, interpreted as "use this fallback".
const DefaultMaxUnits = 100

// ErrDayCapacityIsNotConstructed is returned when a DayCapacity instance was
// not created through the NewDayCapacity factory method.
var ErrDayCapacityIsNotConstructed = errors.New("DayCapacity must be created via NewDayCapacity constructor")

// DayCapacity is the per-calendar-date production limit set by an operator.
// A max of zero is legal and means the day is fully blocked: nothing can be
// admitted without a force-accept override.
//
// DayCapacity records are written one day at a time or in a month batch;
// they are administrative data, changed rarely compared to order intake.
type DayCapacity struct {
	// date is the production day this record applies to
	date kernel.Date

	// maxUnits is the maximum total units the day accepts (>= 0)
	maxUnits int

	// notes is optional operator free text ("oven maintenance", etc.)
	notes string

	// isConstructed ensures the record was created via NewDayCapacity
	isConstructed bool
}

// NewDayCapacity creates a capacity record for a production day.
// maxUnits must be non-negative; zero blocks the day entirely.
func NewDayCapacity(date kernel.Date, maxUnits int, notes string) (*DayCapacity, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	if maxUnits < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxUnits",
			fmt.Errorf("%d is negative", maxUnits))
	}

	return &DayCapacity{
		date:          date,
		maxUnits:      maxUnits,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the DayCapacity was properly constructed through NewDayCapacity.
func (c *DayCapacity) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrDayCapacityIsNotConstructed
	}

	return nil
}

// Date returns the production day this record applies to.
func (c *DayCapacity) Date() kernel.Date {
	return c.date
}

// MaxUnits returns the maximum total units the day accepts.
func (c *DayCapacity) MaxUnits() int {
	return c.maxUnits
}

// Notes returns the operator notes, possibly empty.
func (c *DayCapacity) Notes() string {
	return c.notes
}

// ResolveMaxUnits returns the effective limit for a day given its capacity
// record, or DefaultMaxUnits when no record exists.
func ResolveMaxUnits(c *DayCapacity) int {
	if c == nil {
		return DefaultMaxUnits
	}
	return c.maxUnits
}
