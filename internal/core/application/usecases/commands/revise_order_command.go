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
	ErrReviseOrderCommandIsNotConstructed = errors.New(
		"ReviseOrderCommand must be created via NewReviseOrderCommand constructor",
	)
)

// ReviseOrderCommand represents a request to edit an existing order's
// intake fields: customer data, items, delivery date and time, source, and
// notes. The capacity check is re-run against the (possibly new) target
// date with the order's own units excluded from the tally, so changing
// quantities on an unchanged date is never counted against itself.
type ReviseOrderCommand struct { //nolint:recvcheck //using for validation
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

// NewReviseOrderCommand creates a command to revise an order.
// Applies the same draft validation as NewSubmitOrderCommand.
func NewReviseOrderCommand(
	orderID kernel.UUID,
	customerName, customerPhone, customerEmail string,
	items []order.Item,
	deliveryDate kernel.Date,
	deliveryTime string,
	source order.Source,
	notes string,
	forceAccepted bool,
) (ReviseOrderCommand, error) {
	cmd := ReviseOrderCommand{
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
		return ReviseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReviseOrderCommandIsNotConstructed if validation fails.
func (c ReviseOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being revised.
func (c ReviseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the client's name.
func (c ReviseOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the client's phone, possibly empty.
func (c ReviseOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the client's email, possibly empty.
func (c ReviseOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Items returns the revised product lines.
func (c ReviseOrderCommand) Items() []order.Item {
	return c.items
}

// DeliveryDate returns the (possibly new) production day for the order.
func (c ReviseOrderCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// DeliveryTime returns the optional "HH:MM" delivery hint.
func (c ReviseOrderCommand) DeliveryTime() string {
	return c.deliveryTime
}

// Source returns the intake channel of the order.
func (c ReviseOrderCommand) Source() order.Source {
	return c.source
}

// Notes returns the free-text notes.
func (c ReviseOrderCommand) Notes() string {
	return c.notes
}

// ForceAccepted reports whether the operator explicitly overrides the
// capacity check for this revision.
func (c ReviseOrderCommand) ForceAccepted() bool {
	return c.forceAccepted
}

// TotalUnits returns the unit count the revised order asks its delivery
// date to absorb.
func (c ReviseOrderCommand) TotalUnits() int {
	units := 0
	for _, item := range c.items {
		units += item.Quantity()
	}
	return units
}

func (c *ReviseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReviseOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *ReviseOrderCommand) setItems(items []order.Item) error {
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

func (c *ReviseOrderCommand) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *ReviseOrderCommand) setSource(source order.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}
