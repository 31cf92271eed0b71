package commands

import (
	"errors"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)

	// ErrCancellationNotConfirmed is returned when a request to cancel an
	// order does not carry the explicit confirmation flag. Cancellation is
	// irreversible and releases the order's units from its day, so the
	// caller must confirm it deliberately.
	ErrCancellationNotConfirmed = errors.New("cancellation requires explicit confirmation")
)

// ChangeOrderStatusCommand represents a request to move an order through
// its fulfillment lifecycle.
//
// The confirmed flag is only consulted for cancellation: the engine does
// not prompt anyone, it just refuses to cancel without the flag. The
// confirmation UX belongs to the caller.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	confirmed bool

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID is valid and the target is a known status;
// whether the transition itself is legal is decided by the aggregate.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	confirmed bool,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being transitioned.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Confirmed reports whether the caller explicitly confirmed the request.
func (c ChangeOrderStatusCommand) Confirmed() bool {
	return c.confirmed
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
