package commands

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/services"
)

// ErrCapacityExceeded is the sentinel carried by every CapacityExceededError.
// Use errors.Is to detect it; errors.As exposes the full CapacityCheck.
var ErrCapacityExceeded = errors.New("daily capacity exceeded")

// CapacityExceededError signals that a submission or revision does not fit
// the remaining capacity of its delivery date and no explicit override was
// carried. It is a structured warning, not a hard failure: the caller
// decides whether to abort or resubmit with force-accept, and the embedded
// check gives the operator the numbers to decide with.
type CapacityExceededError struct {
	Check services.CapacityCheck
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %d units requested, %d of %d available",
		ErrCapacityExceeded, e.Check.ProposedUnits, e.Check.AvailableUnits, e.Check.MaxUnits)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
