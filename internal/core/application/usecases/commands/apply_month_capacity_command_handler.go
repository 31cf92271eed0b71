package commands

import (
	"context"
	"errors"
	"fmt"

	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
)

// ApplyMonthCapacityCommandHandler writes one capacity record per day of
// the month, each in its own transaction. A failure on one day does not
// roll back the days already written: partial application is an acceptable,
// recoverable outcome for this administrative batch, and the operator can
// simply re-run it.
type ApplyMonthCapacityCommandHandler struct {
	uowFactory CapacityUoWFactory
}

// NewApplyMonthCapacityCommandHandler creates a handler for month-wide capacity batches.
func NewApplyMonthCapacityCommandHandler(uowFactory CapacityUoWFactory) ApplyMonthCapacityCommandHandler {
	return ApplyMonthCapacityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch. Per-day failures are collected and returned
// joined; successfully written days stay written.
func (h *ApplyMonthCapacityCommandHandler) Handle(ctx context.Context, cmd ApplyMonthCapacityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	first, err := kernel.NewDate(cmd.Year(), cmd.Month(), 1)
	if err != nil {
		return err
	}

	var dayErrs []error
	for date := first; date.Month() == cmd.Month(); date = date.Next() {
		if err := h.applyDay(ctx, date, cmd.MaxUnits(), cmd.Notes()); err != nil {
			dayErrs = append(dayErrs, fmt.Errorf("day %s: %w", date, err))
		}
	}

	return errors.Join(dayErrs...)
}

// applyDay writes a single day's record in its own transaction.
func (h *ApplyMonthCapacityCommandHandler) applyDay(
	ctx context.Context,
	date kernel.Date,
	maxUnits int,
	notes string,
) error {
	dayCapacity, err := capacity.NewDayCapacity(date, maxUnits, notes)
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

	return uow.Commit(ctx)
}
