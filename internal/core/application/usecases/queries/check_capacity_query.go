// Package queries contains read-only operations in the CQRS architecture.
// Query handlers go straight at the database with raw SQL; they never
// mutate orders or capacity and never take locks.
package queries

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

var (
	ErrCheckCapacityQueryIsNotConstructed = errors.New(
		"CheckCapacityQuery must be created via NewCheckCapacityQuery constructor",
	)
)

// CheckCapacityQuery asks whether a proposed unit count fits the remaining
// capacity of a delivery date. When the proposal is a revision of an
// existing order, excludeOrderID removes that order's own units from the
// tally so it is not counted against itself.
//
// This is the read-only preview used by the UI before submission; the
// admission workflow repeats the same check under a lock at write time.
//
// Example:
//
//	query, err := NewCheckCapacityQuery(date, 15, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid capacity check: %w", err)
//	}
//
//	check, err := handler.Handle(ctx, query)
//	if !check.HasCapacity {
//	    fmt.Printf("only %d of %d units available\n", check.AvailableUnits, check.MaxUnits)
//	}
type CheckCapacityQuery struct { //nolint:recvcheck //using for validation
	date           kernel.Date
	proposedUnits  int
	excludeOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckCapacityQuery creates a capacity check query.
// Validates that the date is valid, the proposed units are positive, and
// the exclude identifier, when present, is valid.
func NewCheckCapacityQuery(
	date kernel.Date,
	proposedUnits int,
	excludeOrderID *kernel.UUID,
) (CheckCapacityQuery, error) {
	query := CheckCapacityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDate(date),
		query.setProposedUnits(proposedUnits),
		query.setExcludeOrderID(excludeOrderID),
	); err != nil {
		return CheckCapacityQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckCapacityQueryIsNotConstructed if validation fails.
func (q CheckCapacityQuery) Validate() error {
	return q.guard.Validate(ErrCheckCapacityQueryIsNotConstructed)
}

// Date returns the delivery date being checked.
func (q CheckCapacityQuery) Date() kernel.Date {
	return q.date
}

// ProposedUnits returns the unit count being asked about.
func (q CheckCapacityQuery) ProposedUnits() int {
	return q.proposedUnits
}

// ExcludeOrderID returns the order whose own units are left out of the
// tally, or nil for a new order.
func (q CheckCapacityQuery) ExcludeOrderID() *kernel.UUID {
	return q.excludeOrderID
}

func (q *CheckCapacityQuery) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	q.date = date
	return nil
}

func (q *CheckCapacityQuery) setProposedUnits(proposedUnits int) error {
	if proposedUnits <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("proposedUnits",
			fmt.Errorf("%d is not greater than 0", proposedUnits))
	}

	q.proposedUnits = proposedUnits
	return nil
}

func (q *CheckCapacityQuery) setExcludeOrderID(excludeOrderID *kernel.UUID) error {
	if excludeOrderID == nil {
		return nil
	}
	if err := excludeOrderID.Validate(); err != nil {
		return err
	}

	q.excludeOrderID = excludeOrderID
	return nil
}
