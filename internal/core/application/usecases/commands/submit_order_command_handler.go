package commands

import (
	"context"
	"errors"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/core/domain/services"
	"bakehouse/internal/pkg/errs"
)

// SubmitOrderCommandHandler handles the admission workflow for new orders.
//
// The capacity check and the insert run inside one transaction, with the
// delivery date locked first, so two concurrent submissions for the same
// date cannot both read "has capacity" and jointly overshoot the limit.
// Every order committed without the force-accepted flag fits within its
// day's capacity at the moment its transaction commits.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	var full *CapacityExceededError
//	if errors.As(err, &full) {
//	    // day is full: full.Check carries current/max/available units
//	}
type SubmitOrderCommandHandler struct {
	uowFactory AdmissionUoWFactory
	checker    services.CapacityChecker
	now        NowFunc
}

// NewSubmitOrderCommandHandler creates a handler for order admission.
// Requires an AdmissionUoWFactory for transactional persistence and a
// NowFunc supplying the current time.
func NewSubmitOrderCommandHandler(uowFactory AdmissionUoWFactory, now NowFunc) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewCapacityChecker(),
		now:        now,
	}
}

// Handle processes the order admission command.
//
// Returns the persisted order on success. When the delivery date lacks
// capacity and the command carries no override, returns a
// CapacityExceededError with the full check and persists nothing; a
// resubmission with the override persists the order marked force-accepted.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
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

	check, err := checkDate(ctx, uow, h.checker, cmd.DeliveryDate(), cmd.TotalUnits(), nil)
	if err != nil {
		return nil, err
	}

	if !check.HasCapacity && !cmd.ForceAccepted() {
		return nil, &CapacityExceededError{Check: check}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.Items(),
		cmd.DeliveryDate(),
		cmd.DeliveryTime(),
		cmd.Source(),
		cmd.Notes(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if !check.HasCapacity {
		newOrder.ForceAccept(h.now())
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// checkDate locks the delivery date, resolves its limit, tallies its
// current occupancy and produces the admission decision. Shared by the
// submit and revise handlers; must run inside the unit of work's
// transaction for the lock to serialize anything.
func checkDate(
	ctx context.Context,
	uow AdmissionUoW,
	checker services.CapacityChecker,
	date kernel.Date,
	proposedUnits int,
	excludeID *kernel.UUID,
) (services.CapacityCheck, error) {
	capacityRepo := uow.CapacityRepository()

	if err := capacityRepo.LockDate(ctx, date); err != nil {
		return services.CapacityCheck{}, err
	}

	dayCapacity, err := capacityRepo.Get(ctx, date)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return services.CapacityCheck{}, err
	}
	maxUnits := capacity.ResolveMaxUnits(dayCapacity)

	currentUnits, err := uow.OrderRepository().SumActiveUnits(ctx, date, excludeID)
	if err != nil {
		return services.CapacityCheck{}, err
	}

	return checker.Check(currentUnits, proposedUnits, maxUnits)
}
