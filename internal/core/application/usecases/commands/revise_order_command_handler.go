package commands

import (
	"context"

	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/core/domain/services"
)

// ReviseOrderCommandHandler handles edits to an existing order.
//
// The revision runs the same serialized capacity check as admission, but
// with the revised order's own identifier excluded from the occupancy
// tally: the check evaluates the edit against the other orders on the
// target date only. Moving the delivery date is therefore checked against
// the destination day, and the units leave the origin day automatically
// once the update commits.
type ReviseOrderCommandHandler struct {
	uowFactory AdmissionUoWFactory
	checker    services.CapacityChecker
	now        NowFunc
}

// NewReviseOrderCommandHandler creates a handler for order revision.
// Requires an AdmissionUoWFactory for transactional persistence and a
// NowFunc supplying the current time.
func NewReviseOrderCommandHandler(uowFactory AdmissionUoWFactory, now NowFunc) ReviseOrderCommandHandler {
	return ReviseOrderCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewCapacityChecker(),
		now:        now,
	}
}

// Handle processes the revision command.
//
// Returns the updated order on success. Terminal orders cannot be revised.
// When the target date lacks capacity and the command carries no override,
// returns a CapacityExceededError and persists nothing.
func (h *ReviseOrderCommandHandler) Handle(ctx context.Context, cmd ReviseOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	excludeID := cmd.OrderID()
	check, err := checkDate(ctx, uow, h.checker, cmd.DeliveryDate(), cmd.TotalUnits(), &excludeID)
	if err != nil {
		return nil, err
	}

	if !check.HasCapacity && !cmd.ForceAccepted() {
		return nil, &CapacityExceededError{Check: check}
	}

	if err = existing.Revise(
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.Items(),
		cmd.DeliveryDate(),
		cmd.DeliveryTime(),
		cmd.Source(),
		cmd.Notes(),
		h.now(),
	); err != nil {
		return nil, err
	}

	if !check.HasCapacity {
		existing.ForceAccept(h.now())
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
