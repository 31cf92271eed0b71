package commands

import (
	"context"

	"bakehouse/internal/core/domain/model/order"
)

// EventPublisher receives domain events drained from aggregates after a
// successful commit. Implementations forward them to whatever downstream
// cares (the delivered event feeds the customer feedback flow); publishing
// is fire-and-forget from the engine's point of view.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent)
}

// ChangeOrderStatusCommandHandler applies the order lifecycle state machine.
//
// The handler is the only code path that writes an order's status. Illegal
// transitions are rejected by the aggregate with ErrInvalidTransition;
// cancellation additionally requires the command's confirmation flag.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher, time.Now)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.InProduction, false)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // the error names the current and requested statuses
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  EventPublisher
	now        NowFunc
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// The publisher may be nil when no collaborator listens for events.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher EventPublisher,
	now NowFunc,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle processes the status change command.
// The status write and timestamp update commit in a single transaction;
// domain events are published only after the commit succeeds.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Target() == order.Cancelled && !cmd.Confirmed() {
		return nil, ErrCancellationNotConfirmed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.Target(), h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		for _, event := range existing.TakeEvents() {
			h.publisher.Publish(ctx, event)
		}
	}

	return existing, nil
}
