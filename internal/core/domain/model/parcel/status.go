package parcel

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
// It implements a state machine with defined transitions to ensure
// packages follow the correct tracking workflow.
//
// State transitions:
//
//	Created ──┬──> Sent ──┬──> Accepted
//	          │     │ ^   │
//	          │     v │   │
//	          │   Returned┤
//	          │     │     │
//	          └─────┴─────┴──> Canceled
//
// Accepted and Canceled are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a package is first registered.
	// It is only reachable at creation time and never re-entered.
	Created

	// Sent indicates the package has been handed to transport.
	Sent

	// Accepted indicates the recipient has taken delivery.
	// This is a final state with no further transitions allowed.
	Accepted

	// Returned indicates delivery failed and the package went back.
	// A returned package may be sent again or canceled.
	Returned

	// Canceled indicates the shipment was aborted.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Sent:     "Sent",
		Accepted: "Accepted",
		Returned: "Returned",
		Canceled: "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:  "Created",
		Sent:     "Sent",
		Accepted: "Accepted",
		Returned: "Returned",
		Canceled: "Canceled",
	}
}

// AllStatuses returns every valid status in display order.
func AllStatuses() []Status {
	return []Status{Created, Sent, Accepted, Returned, Canceled}
}

// StatusFromString parses a status label into its Status value.
// Matching is exact ("Sent", not "sent").
//
// Returns:
//   - the Status on success
//   - an error if the label names no valid status
//
// This function is used at the HTTP boundary to turn request payloads
// into domain values before any transition is evaluated.
func StatusFromString(label string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", label),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Sent, Accepted, Returned, Canceled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Created", "Sent", "Accepted", "Returned", or "Canceled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Accepted and Canceled are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Canceled
}

// CanTransitionTo reports whether the transition from s to next is legal.
//
// The decision table is total over the closed enum:
//
//	Created  -> Sent, Canceled
//	Sent     -> Accepted, Returned, Canceled
//	Returned -> Sent, Canceled
//	Accepted -> (none)
//	Canceled -> (none)
//
// Self-transitions are never legal, and any invalid status value on either
// side makes the transition illegal. The method has no side effects.
func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}

	switch s {
	case Created:
		return next == Sent || next == Canceled
	case Sent:
		return next == Accepted || next == Returned || next == Canceled
	case Returned:
		return next == Sent || next == Canceled
	case Accepted, Canceled:
		return false
	case Unknown:
		return false
	default:
		return false
	}
}

// AllowedTransitions returns the set of statuses legally reachable from s,
// in a fixed display order. Terminal and invalid statuses yield an empty
// (non-nil) slice.
//
// This method backs the allowedTransitions field of detail responses so the
// UI can offer only legal next steps.
func (s Status) AllowedTransitions() []Status {
	allowed := make([]Status, 0, 3)
	for _, next := range AllStatuses() {
		if s.CanTransitionTo(next) {
			allowed = append(allowed, next)
		}
	}
	return allowed
}
