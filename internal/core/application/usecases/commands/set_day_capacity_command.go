package commands

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

var (
	ErrSetDayCapacityCommandIsNotConstructed = errors.New(
		"SetDayCapacityCommand must be created via NewSetDayCapacityCommand constructor",
	)
)

// SetDayCapacityCommand represents an operator setting the production limit
// for a single day. A max of zero blocks the day entirely.
type SetDayCapacityCommand struct { //nolint:recvcheck //using for validation
	date     kernel.Date
	maxUnits int
	notes    string

	guard guard.ConstructorGuard
}

// NewSetDayCapacityCommand creates a command to set one day's capacity.
// Validates that the date is valid and maxUnits is non-negative.
func NewSetDayCapacityCommand(date kernel.Date, maxUnits int, notes string) (SetDayCapacityCommand, error) {
	cmd := SetDayCapacityCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setMaxUnits(maxUnits),
	); err != nil {
		return SetDayCapacityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetDayCapacityCommandIsNotConstructed if validation fails.
func (c SetDayCapacityCommand) Validate() error {
	return c.guard.Validate(ErrSetDayCapacityCommandIsNotConstructed)
}

// Date returns the production day being configured.
func (c SetDayCapacityCommand) Date() kernel.Date {
	return c.date
}

// MaxUnits returns the limit to apply.
func (c SetDayCapacityCommand) MaxUnits() int {
	return c.maxUnits
}

// Notes returns the operator notes.
func (c SetDayCapacityCommand) Notes() string {
	return c.notes
}

func (c *SetDayCapacityCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *SetDayCapacityCommand) setMaxUnits(maxUnits int) error {
	if maxUnits < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxUnits",
			fmt.Errorf("%d is negative", maxUnits))
	}

	c.maxUnits = maxUnits
	return nil
}
