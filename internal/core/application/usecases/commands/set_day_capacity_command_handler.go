package commands

import (
	"context"

	"bakehouse/internal/core/domain/model/capacity"
)

// SetDayCapacityCommandHandler persists the production limit for one day.
// Creates the record when the day had none, replaces it otherwise.
type SetDayCapacityCommandHandler struct {
	uowFactory CapacityUoWFactory
}

// NewSetDayCapacityCommandHandler creates a handler for single-day capacity edits.
func NewSetDayCapacityCommandHandler(uowFactory CapacityUoWFactory) SetDayCapacityCommandHandler {
	return SetDayCapacityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the capacity edit in a single transaction.
func (h *SetDayCapacityCommandHandler) Handle(ctx context.Context, cmd SetDayCapacityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dayCapacity, err := capacity.NewDayCapacity(cmd.Date(), cmd.MaxUnits(), cmd.Notes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CapacityRepository().Upsert(ctx, dayCapacity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
