package commands

import (
	"context"
	"errors"
	"time"

	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/errs"
)

// trackingNumberAttempts bounds how often a colliding tracking number is
// regenerated before the failure surfaces to the caller.
const trackingNumberAttempts = 3

// CreateParcelCommandHandler handles the business logic for package creation.
// Assigns a server-generated tracking number, forces the initial Created
// status with its history entry, and persists both atomically.
//
// Tracking-number collisions are resolved by regenerating and retrying a
// bounded number of times; the store's unique constraint stays the single
// authority on uniqueness.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, services.NewTrackingNumberGenerator())
//	cmd, _ := NewCreateParcelCommand(kernel.NewUUID(),
//	    "Alice", "1 Main St", "+15551234567",
//	    "Bob", "2 Side St", "+46701234567")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("package creation failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	generator  TrackingNumberGenerator
}

// NewCreateParcelCommandHandler creates a handler for package creation operations.
// Requires a ParcelUoWFactory for transactional persistence and a
// TrackingNumberGenerator for tracking-number candidates.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	generator TrackingNumberGenerator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the package creation command.
// Each attempt builds the aggregate with a fresh tracking number and persists
// it in its own transaction; only a duplicate-tracking-number failure is
// retried, any other store failure is returned as is.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for range trackingNumberAttempts {
		if err = h.tryCreate(ctx, cmd); err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrDuplicateTrackingNumber) {
			return err
		}
	}

	return err
}

// tryCreate performs a single creation attempt in its own transaction.
func (h *CreateParcelCommandHandler) tryCreate(ctx context.Context, cmd CreateParcelCommand) error {
	now := time.Now().UTC()

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		h.generator.Generate(now),
		cmd.Sender(),
		cmd.Recipient(),
		now,
	)
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

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
