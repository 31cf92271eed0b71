package order

import (
	"errors"
	"fmt"
	"time"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderIsTerminal is returned when attempting to revise an order whose
	// status is terminal (delivered or cancelled).
	ErrOrderIsTerminal = errors.New("order is in a terminal status and cannot be revised")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order from intake through production to delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer name
//   - Must have at least one item; items carry positive quantities and non-negative prices
//   - The total price always equals the sum of item subtotals at time of write
//   - Status transitions follow the table in Status; only ChangeStatus writes the status
//   - The force-accepted flag is set only when the order was admitted above
//     the capacity of its delivery date with an explicit operator override
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders are never deleted: cancellation is a status change, so the capacity
// history of a production day stays reconstructable.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName, customerPhone and customerEmail describe the client.
	// Only the name is mandatory.
	customerName  string
	customerPhone string
	customerEmail string

	// items holds the ordered product lines (never empty)
	items []Item

	// deliveryDate is the production day the order's units are booked against
	deliveryDate kernel.Date

	// deliveryTime is an optional "HH:MM" hint within the delivery date
	deliveryTime string

	// status represents the current state in the fulfillment lifecycle
	status Status

	// source is the intake channel the order arrived through
	source Source

	// totalPrice is derived from items and kept redundantly for reporting
	totalPrice decimal.Decimal

	// forceAccepted records an explicit operator override of the capacity check
	forceAccepted bool

	// notes is free text for the production team
	notes string

	createdAt time.Time
	updatedAt time.Time

	// events holds domain events recorded since the last drain
	events []DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is
// the only way to create a fresh order, ensuring all business invariants
// are maintained.
//
// The current time is passed in by the caller rather than read from the
// system clock, keeping the aggregate deterministic under test.
//
// Example:
//
//	items := []order.Item{item}
//	o, err := order.NewOrder(kernel.NewUUID(), "Ana", "555-0101", "ana@example.com",
//	    items, deliveryDate, "15:00", order.SourceWhatsApp, "no sugar", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerName, customerPhone, customerEmail string,
	items []Item,
	deliveryDate kernel.Date,
	deliveryTime string,
	source Source,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setItems(items),
		o.setDeliveryDate(deliveryDate),
		o.setDeliveryTime(deliveryTime),
		o.setSource(source),
	); err != nil {
		return nil, err
	}

	o.customerPhone = customerPhone
	o.customerEmail = customerEmail
	o.notes = notes
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and the stored force-accepted flag and
// timestamps. All construction invariants are still enforced.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerPhone, customerEmail string,
	items []Item,
	deliveryDate kernel.Date,
	deliveryTime string,
	status Status,
	source Source,
	forceAccepted bool,
	notes string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setItems(items),
		o.setDeliveryDate(deliveryDate),
		o.setDeliveryTime(deliveryTime),
		o.setStatus(status),
		o.setSource(source),
	); err != nil {
		return nil, err
	}

	o.customerPhone = customerPhone
	o.customerEmail = customerEmail
	o.forceAccepted = forceAccepted
	o.notes = notes
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the client's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the client's phone, possibly empty.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerEmail returns the client's email, possibly empty.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Items returns a copy of the ordered product lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryDate returns the production day the order is booked against.
func (o *Order) DeliveryDate() kernel.Date {
	return o.deliveryDate
}

// DeliveryTime returns the optional "HH:MM" delivery hint, possibly empty.
func (o *Order) DeliveryTime() string {
	return o.deliveryTime
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Source returns the intake channel the order arrived through.
func (o *Order) Source() Source {
	return o.source
}

// TotalPrice returns the derived order total (sum of item subtotals).
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// TotalUnits returns the sum of item quantities. This is the number the
// order contributes to its delivery date's occupancy while not cancelled.
func (o *Order) TotalUnits() int {
	units := 0
	for _, item := range o.items {
		units += item.Quantity()
	}
	return units
}

// ForceAccepted reports whether the order was admitted over capacity by an
// explicit operator override.
func (o *Order) ForceAccepted() bool {
	return o.forceAccepted
}

// Notes returns the free-text notes for the production team.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to the target status according to the
// transition table. It is the only writer of the status field.
//
// Reaching Delivered records an OrderDeliveredEvent on the aggregate;
// cancellation implicitly releases the order's units from its day's
// occupancy because occupancy is recomputed over non-cancelled orders.
//
// Returns an error wrapping ErrInvalidTransition when the target is not in
// the allowed-successor set of the current status.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now

	if newStatus == Delivered {
		o.events = append(o.events, OrderDeliveredEvent{OrderID: o.id, OccurredAt: now})
	}

	return nil
}

// Revise replaces the editable intake fields of the order: customer data,
// items, delivery date and time, source, and notes. The total price is
// recomputed and the force-accepted flag is reset; the admission workflow
// re-runs the capacity check and re-applies the override when still needed.
//
// Orders in a terminal status cannot be revised.
func (o *Order) Revise(
	customerName, customerPhone, customerEmail string,
	items []Item,
	deliveryDate kernel.Date,
	deliveryTime string,
	source Source,
	notes string,
	now time.Time,
) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrOrderIsTerminal, o.status)
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setItems(items),
		o.setDeliveryDate(deliveryDate),
		o.setDeliveryTime(deliveryTime),
		o.setSource(source),
	); err != nil {
		return err
	}

	o.customerPhone = customerPhone
	o.customerEmail = customerEmail
	o.notes = notes
	o.forceAccepted = false
	o.updatedAt = now

	return nil
}

// ForceAccept marks the order as admitted above capacity by an explicit
// operator override. Called by the admission workflow only when the
// capacity check failed and the override flag was carried by the request.
func (o *Order) ForceAccept(now time.Time) {
	o.forceAccepted = true
	o.updatedAt = now
}

// TakeEvents drains and returns the domain events recorded on the
// aggregate since the last drain. The application layer calls this after a
// successful commit and hands the events to the outbound ports.
func (o *Order) TakeEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setItems validates and sets the order lines, recomputing the total price
// so the redundant total can never drift from the items.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := decimal.Zero
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalPrice = total
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setDeliveryTime(deliveryTime string) error {
	if deliveryTime == "" {
		return nil
	}
	if _, err := time.Parse("15:04", deliveryTime); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryTime", err)
	}
	o.deliveryTime = deliveryTime
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	o.source = source
	return nil
}
