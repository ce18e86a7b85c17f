package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
	// the NewParcel or RestoreParcel factory methods. This ensures all parcels are
	// properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// createdDescription is the history note written for the initial Created entry.
const createdDescription = "Package created"

// Parcel represents a tracked package. It is the aggregate root that manages
// the package lifecycle from creation through its status transitions.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and a non-blank tracking number
//   - Sender and recipient contacts are complete and validated
//   - The current status always equals the status of the latest history entry
//   - There is at least one history entry (the initial Created entry) at all times
//   - Status only changes through ChangeStatus, which enforces the state machine
//     and appends the matching history entry
//
// The Parcel struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Parcel struct {
	// id is the unique identifier for the package
	id kernel.UUID

	// trackingNumber is the human-readable unique tracking code
	trackingNumber string

	// sender and recipient are the two parties of the shipment
	sender    Contact
	recipient Contact

	// status is the current state in the package lifecycle
	status Status

	// createdAt is set once at creation and never changes
	createdAt time.Time

	// history is the ordered status history, oldest first
	history []HistoryEntry

	// isConstructed ensures the parcel was created via a factory method
	isConstructed bool
}

// NewParcel creates a new Parcel with validation. This is the only way to create
// a package from caller input, ensuring the aggregate starts in a valid state.
//
// The status is forced to Created regardless of anything the caller intended,
// and the initial history entry ("Package created") is appended with the
// creation timestamp. Callers cannot supply a status or pre-built history.
//
// Parameters:
//   - id: Unique identifier for the package (must be valid UUID)
//   - trackingNumber: server-generated unique tracking code (non-blank)
//   - sender, recipient: validated Contact value objects
//   - createdAt: creation time, recorded on the package and its first history entry
//
// Returns:
//   - *Parcel: The created package if all validations pass
//   - error: Validation error if any parameter is invalid
func NewParcel(
	id kernel.UUID,
	trackingNumber string,
	sender Contact,
	recipient Contact,
	createdAt time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingNumber(trackingNumber),
		parcel.setContacts(sender, recipient),
		parcel.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	initial, err := NewHistoryEntry(id, Created, parcel.createdAt, createdDescription)
	if err != nil {
		return nil, err
	}
	parcel.history = []HistoryEntry{initial}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel from persistence. Unlike NewParcel it
// accepts the stored status and history, but still enforces the aggregate
// invariants: the history must be non-empty and its latest entry must carry
// the package's current status.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber string,
	sender Contact,
	recipient Contact,
	status Status,
	createdAt time.Time,
	history []HistoryEntry,
) (*Parcel, error) {
	parcel := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingNumber(trackingNumber),
		parcel.setContacts(sender, recipient),
		parcel.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	parcel.status = status

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	if last := history[len(history)-1]; last.Status() != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"statusHistory",
			fmt.Errorf("latest history status %s does not match package status %s",
				last.Status(), status),
		)
	}
	parcel.history = append([]HistoryEntry(nil), history...)

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the package's tracking code.
// It is immutable once assigned at creation.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Sender returns the sending party's contact details.
func (p *Parcel) Sender() Contact {
	return p.sender
}

// Recipient returns the receiving party's contact details.
func (p *Parcel) Recipient() Contact {
	return p.recipient
}

// Status returns the current status of the package.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns the immutable creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// History returns a copy of the status history, oldest entry first.
// The latest entry always carries the package's current status.
func (p *Parcel) History() []HistoryEntry {
	return append([]HistoryEntry(nil), p.history...)
}

// AllowedTransitions returns the statuses legally reachable from the
// package's current status.
func (p *Parcel) AllowedTransitions() []Status {
	return p.status.AllowedTransitions()
}

// ChangeStatus transitions the package to the requested status.
//
// This method is the sole writer of the package's status and the sole
// appender to its history. It enforces the following rules:
//   - The transition must be legal per Status.CanTransitionTo
//   - A history entry ("Status changed to X") is appended with the given time
//
// Parameters:
//   - next: the requested status
//   - at: the time the transition is recorded
//
// Returns:
//   - nil on success
//   - errs.InvalidStatusTransitionError naming the current and requested
//     status if the transition is illegal; the package is left unchanged
func (p *Parcel) ChangeStatus(next Status, at time.Time) error {
	if !p.status.CanTransitionTo(next) {
		return errs.NewInvalidStatusTransitionError(p.status.String(), next.String())
	}

	entry, err := NewHistoryEntry(p.id, next, at, "Status changed to "+next.String())
	if err != nil {
		return err
	}

	p.status = next
	p.history = append(p.history, entry)
	return nil
}

// setID validates and sets the package's unique identifier.
// This is a private method used only during construction.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setTrackingNumber validates and sets the tracking code.
// This is a private method used only during construction.
func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	p.trackingNumber = trackingNumber
	return nil
}

// setContacts validates and sets both parties.
// This is a private method used only during construction.
func (p *Parcel) setContacts(sender, recipient Contact) error {
	if err := errors.Join(sender.Validate(), recipient.Validate()); err != nil {
		return err
	}
	p.sender = sender
	p.recipient = recipient
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
