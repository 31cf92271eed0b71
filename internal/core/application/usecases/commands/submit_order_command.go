package commands

import (
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a request to admit a new customer order
// against the daily production capacity of its delivery date.
//
// The force-accepted flag implements the second step of the two-phase
// admission protocol: a first submission without it is answered with a
// capacity warning when the day is full, and only a resubmission carrying
// the flag is persisted over capacity.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(kernel.NewUUID(), "Ana", "555-0101", "",
//	    items, deliveryDate, "", order.SourceManual, "", false)
//	if err != nil {
//	    return fmt.Errorf("invalid order draft: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	var full *CapacityExceededError
//	if errors.As(err, &full) {
//	    // surface full.Check to the operator; resubmit with forceAccepted=true to override
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	customerEmail string
	items         []order.Item
	deliveryDate  kernel.Date
	deliveryTime  string
	source        order.Source
	notes         string
	forceAccepted bool

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to admit a new order.
// Validates that the order ID and delivery date are valid, the customer
// name is present, the items list is non-empty with every line valid, and
// the source is a known intake channel.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerName, customerPhone, customerEmail string,
	items []order.Item,
	deliveryDate kernel.Date,
	deliveryTime string,
	source order.Source,
	notes string,
	forceAccepted bool,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		customerPhone: customerPhone,
		customerEmail: customerEmail,
		deliveryTime:  deliveryTime,
		notes:         notes,
		forceAccepted: forceAccepted,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
		cmd.setDeliveryDate(deliveryDate),
		cmd.setSource(source),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the client's name.
func (c SubmitOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the client's phone, possibly empty.
func (c SubmitOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the client's email, possibly empty.
func (c SubmitOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Items returns the ordered product lines.
func (c SubmitOrderCommand) Items() []order.Item {
	return c.items
}

// DeliveryDate returns the production day the order should be booked against.
func (c SubmitOrderCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// DeliveryTime returns the optional "HH:MM" delivery hint.
func (c SubmitOrderCommand) DeliveryTime() string {
	return c.deliveryTime
}

// Source returns the intake channel of the order.
func (c SubmitOrderCommand) Source() order.Source {
	return c.source
}

// Notes returns the free-text notes.
func (c SubmitOrderCommand) Notes() string {
	return c.notes
}

// ForceAccepted reports whether the operator explicitly overrides the
// capacity check.
func (c SubmitOrderCommand) ForceAccepted() bool {
	return c.forceAccepted
}

// TotalUnits returns the unit count the draft asks the delivery date to absorb.
func (c SubmitOrderCommand) TotalUnits() int {
	units := 0
	for _, item := range c.items {
		units += item.Quantity()
	}
	return units
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *SubmitOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}

	c.items = items
	return nil
}

func (c *SubmitOrderCommand) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *SubmitOrderCommand) setSource(source order.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}
