package order

import (
	"time"

	"bakehouse/internal/core/domain/model/kernel"
)

// DomainEvent is raised by the Order aggregate when something outside the
// aggregate may need to react. Events are recorded on the aggregate and
// drained by the application layer after a successful commit; the aggregate
// itself never calls anything.
type DomainEvent interface {
	EventName() string
}

// OrderDeliveredEvent is recorded when an order reaches the Delivered
// status. Downstream collaborators use it to open the feedback flow for the
// customer; delivery of that notification is outside this core.
type OrderDeliveredEvent struct {
	OrderID    kernel.UUID
	OccurredAt time.Time
}

// EventName identifies the event type for routing and logging.
func (OrderDeliveredEvent) EventName() string {
	return "order.delivered"
}
