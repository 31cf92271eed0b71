package commands

import (
	"errors"
	"fmt"
	"time"

	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

var (
	ErrApplyMonthCapacityCommandIsNotConstructed = errors.New(
		"ApplyMonthCapacityCommand must be created via NewApplyMonthCapacityCommand constructor",
	)
)

// ApplyMonthCapacityCommand represents an operator applying one production
// limit to every day of a month in a single action.
type ApplyMonthCapacityCommand struct { //nolint:recvcheck //using for validation
	year     int
	month    time.Month
	maxUnits int
	notes    string

	guard guard.ConstructorGuard
}

// NewApplyMonthCapacityCommand creates a command to batch-apply a capacity
// limit over a month. Validates that the month is real and maxUnits is
// non-negative.
func NewApplyMonthCapacityCommand(
	year int,
	month time.Month,
	maxUnits int,
	notes string,
) (ApplyMonthCapacityCommand, error) {
	cmd := ApplyMonthCapacityCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setYearMonth(year, month),
		cmd.setMaxUnits(maxUnits),
	); err != nil {
		return ApplyMonthCapacityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyMonthCapacityCommandIsNotConstructed if validation fails.
func (c ApplyMonthCapacityCommand) Validate() error {
	return c.guard.Validate(ErrApplyMonthCapacityCommandIsNotConstructed)
}

// Year returns the calendar year of the month being configured.
func (c ApplyMonthCapacityCommand) Year() int {
	return c.year
}

// Month returns the month being configured.
func (c ApplyMonthCapacityCommand) Month() time.Month {
	return c.month
}

// MaxUnits returns the limit to apply to every day.
func (c ApplyMonthCapacityCommand) MaxUnits() int {
	return c.maxUnits
}

// Notes returns the operator notes applied to every day.
func (c ApplyMonthCapacityCommand) Notes() string {
	return c.notes
}

func (c *ApplyMonthCapacityCommand) setYearMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return errs.NewValueIsInvalidErrorWithCause("month",
			fmt.Errorf("%d is not a valid month", month))
	}
	if year < 1 {
		return errs.NewValueIsInvalidErrorWithCause("year",
			fmt.Errorf("%d is not a valid year", year))
	}

	c.year = year
	c.month = month
	return nil
}

func (c *ApplyMonthCapacityCommand) setMaxUnits(maxUnits int) error {
	if maxUnits < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxUnits",
			fmt.Errorf("%d is negative", maxUnits))
	}

	c.maxUnits = maxUnits
	return nil
}
