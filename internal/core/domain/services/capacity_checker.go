package services

import (
	"fmt"

	"bakehouse/internal/pkg/errs"
)

// CapacityCheck is the result of a single admission decision. It is derived
// and transient: computed fresh for every check, never persisted.
//
// The occupation percent describes the day as it is booked before the
// proposed units are added, since the check answers "is there room for this
// addition". It may exceed 100 when a day is already over-booked through
// force-accepted orders.
type CapacityCheck struct {
	// HasCapacity is true when the proposed units fit within the day's limit.
	HasCapacity bool

	// CurrentUnits is the sum of units across the day's non-cancelled orders.
	CurrentUnits int

	// ProposedUnits is the unit count being asked about.
	ProposedUnits int

	// MaxUnits is the resolved limit for the day.
	MaxUnits int

	// AvailableUnits is max(0, MaxUnits - CurrentUnits).
	AvailableUnits int

	// OccupationPercent is CurrentUnits / MaxUnits * 100, or 0 for a zero limit.
	OccupationPercent float64
}

// CapacityChecker is a domain service producing admission decisions for a
// production day. It is pure computation over the tallies handed to it:
// reading the day's occupancy and resolving its limit belong to the caller.
//
// Business rules:
//   - A proposal fits iff current + proposed <= max
//   - A zero limit blocks the day: no positive proposal fits
//   - Proposals must be positive; checking zero or negative units is a caller bug
//
// Example usage:
//
//	checker := services.NewCapacityChecker()
//	check, err := checker.Check(90, 5, 100)
//	if err != nil {
//	    return err
//	}
//	if !check.HasCapacity {
//	    // surface the warning, wait for an explicit override
//	}
type CapacityChecker struct{}

// NewCapacityChecker creates a new CapacityChecker instance.
func NewCapacityChecker() CapacityChecker {
	return CapacityChecker{}
}

// Check computes the admission decision for adding proposedUnits to a day
// that currently carries currentUnits against a limit of maxUnits.
//
// The computation is side-effect free and idempotent: calling it repeatedly
// with the same inputs yields the same CapacityCheck.
func (CapacityChecker) Check(currentUnits, proposedUnits, maxUnits int) (CapacityCheck, error) {
	if proposedUnits <= 0 {
		return CapacityCheck{}, errs.NewValueIsInvalidErrorWithCause("proposedUnits",
			fmt.Errorf("%d is not greater than 0", proposedUnits))
	}
	if currentUnits < 0 {
		return CapacityCheck{}, errs.NewValueIsInvalidErrorWithCause("currentUnits",
			fmt.Errorf("%d is negative", currentUnits))
	}
	if maxUnits < 0 {
		return CapacityCheck{}, errs.NewValueIsInvalidErrorWithCause("maxUnits",
			fmt.Errorf("%d is negative", maxUnits))
	}

	available := maxUnits - currentUnits
	if available < 0 {
		available = 0
	}

	occupation := 0.0
	if maxUnits > 0 {
		occupation = float64(currentUnits) / float64(maxUnits) * 100
	}

	return CapacityCheck{
		HasCapacity:       currentUnits+proposedUnits <= maxUnits,
		CurrentUnits:      currentUnits,
		ProposedUnits:     proposedUnits,
		MaxUnits:          maxUnits,
		AvailableUnits:    available,
		OccupationPercent: occupation,
	}, nil
}
