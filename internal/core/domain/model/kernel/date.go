package kernel

import (
	"fmt"
	"time"

	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

// DateLayout is the canonical wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when attempting to use an improperly initialized Date.
// Dates must be created using NewDate, DateFromString, or DateFromTime to ensure validity.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateFromString, or DateFromTime constructors")

// Date represents a plain calendar date (year, month, day) without any time
// or time zone component. Production capacity is booked per calendar day, so
// all delivery and capacity bookkeeping uses Date rather than time.Time to
// avoid off-by-one-day misattribution across zones.
//
// Date is an immutable value object. The zero value is invalid and fails
// validation - use the constructors to create instances.
//
// Example:
//
//	d, err := kernel.NewDate(2025, time.March, 8)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(d) // Output: 2025-03-08
type Date struct { //nolint:recvcheck //using for validation
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewDate creates a Date from year, month and day components.
// Returns an error when the components do not form a real calendar date
// (for example February 30th).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%04d-%02d-%02d is not a valid calendar date", year, month, day))
	}

	return Date{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DateFromString parses a Date from its canonical "YYYY-MM-DD" representation.
// This is the format used by the HTTP adapter and the database layer.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateFromTime(t), nil
}

// DateFromTime extracts the calendar date from a time.Time, discarding the
// clock and zone. The date is taken in the location carried by t.
func DateFromTime(t time.Time) Date {
	return Date{
		year:  t.Year(),
		month: t.Month(),
		day:   t.Day(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Date is properly constructed.
// Returns ErrDateIsNotConstructed for zero-value instances.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.year
}

// Month returns the calendar month.
func (d Date) Month() time.Month {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// Time returns the date as midnight UTC, which is how dates are stored in
// the database `date` column.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns the canonical "YYYY-MM-DD" representation.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// IsEqual reports whether two dates name the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateFromTime(d.Time().AddDate(0, 0, n))
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// DaysUntil returns the number of whole days from d to other.
// The result is negative when other falls before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}
