package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/guard"
)

var (
	ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
		"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
	)
)

// UpdateParcelStatusCommand represents a request to move a package to a new
// lifecycle status. The command only checks that the requested status is a
// valid member of the enum; whether the transition is legal from the
// package's current status is decided by the handler inside the transaction,
// where the current status is authoritative.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(parcelID, parcel.Sent)
//	if err != nil {
//	    return fmt.Errorf("invalid status change request: %w", err)
//	}
//
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a package's status.
// Validates that the package ID is valid and the requested status is a valid
// enum member. Returns an error if any validation fails.
func NewUpdateParcelStatusCommand(parcelID kernel.UUID, newStatus parcel.Status) (UpdateParcelStatusCommand, error) {
	command := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the package to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the requested target status.
func (c UpdateParcelStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
