package queries

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery requests the full orders with a delivery date in a range,
// both bounds inclusive. This is the operator's working list for a
// production day, so it returns whole aggregates with their line items
// rather than a flattened projection.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query.
// Validates that both dates are valid and from does not fall after to.
func NewGetOrdersQuery(from, to kernel.Date) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRange(from, to); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// From returns the first date of the range.
func (q GetOrdersQuery) From() kernel.Date {
	return q.from
}

// To returns the last date of the range.
func (q GetOrdersQuery) To() kernel.Date {
	return q.to
}

func (q *GetOrdersQuery) setRange(from, to kernel.Date) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.After(to) {
		return errs.NewValueIsInvalidErrorWithCause("dateRange",
			fmt.Errorf("from %s falls after to %s", from, to))
	}

	q.from = from
	q.to = to
	return nil
}
