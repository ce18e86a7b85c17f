package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a request to register a new package.
// It carries the package identity and both parties' contact details; the
// tracking number and the initial status are never part of the request
// and are assigned by the create workflow itself.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID,
//	    "Alice", "1 Main St", "+15551234567",
//	    "Bob", "2 Side St", "+46701234567")
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, generator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create package: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	sender    parcel.Contact
	recipient parcel.Contact

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new package.
// All six contact fields are validated; the returned error joins every
// violation (missing fields, malformed phones) so the boundary can report
// the complete list, not just the first.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderName, senderAddress, senderPhone string,
	recipientName, recipientAddress, recipientPhone string,
) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	sender, senderErr := parcel.NewContact(parcel.RoleSender, senderName, senderAddress, senderPhone)
	recipient, recipientErr := parcel.NewContact(parcel.RoleRecipient, recipientName, recipientAddress, recipientPhone)

	if err := errors.Join(
		command.setParcelID(parcelID),
		senderErr,
		recipientErr,
	); err != nil {
		return CreateParcelCommand{}, err
	}

	command.sender = sender
	command.recipient = recipient
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new package.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Sender returns the sending party's contact details.
func (c CreateParcelCommand) Sender() parcel.Contact {
	return c.sender
}

// Recipient returns the receiving party's contact details.
func (c CreateParcelCommand) Recipient() parcel.Contact {
	return c.recipient
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
