package commands

import (
	"context"
	"time"
)

// UpdateParcelStatusCommandHandler handles the business logic for status changes.
// It is the only write path for a package's status: the package is loaded
// under a row lock, the transition is validated against the current status by
// the aggregate, and the updated status plus its history entry are persisted
// in one transaction.
//
// Two concurrent updates of the same package serialize on the row lock:
// the loser re-reads the winner's committed status and its request is
// re-evaluated against the transition rules, succeeding or failing on the
// new state rather than the stale one.
//
// Example:
//
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateParcelStatusCommand(parcelID, parcel.Accepted)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ObjectNotFoundError / errs.InvalidStatusTransitionError / store failure
//	    return err
//	}
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status change operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the package with GetForUpdate so concurrent writers of the same
// package are serialized, applies the transition through the aggregate, and
// commits the package row together with the appended history entry.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
