package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the concrete error types.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsRequired         = errors.New("value is required")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrDuplicateTrackingNumber = errors.New("duplicate tracking number")
)

// sanitize flattens a value into a single-line string suitable for error
// messages. Newlines are replaced so log lines cannot be split by payloads.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that an object with the given identifier
// does not exist in the store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying cause, typically a store-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value has an invalid format
// or violates a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStatusTransitionError indicates that a requested status change is not
// permitted by the package lifecycle state machine. Both the current and the
// requested status labels are carried so the boundary can name them.
type InvalidStatusTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError for
// the given current and requested status labels.
func NewInvalidStatusTransitionError(from, to string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

// NewInvalidStatusTransitionErrorWithCause creates an InvalidStatusTransitionError
// wrapping the underlying cause.
func NewInvalidStatusTransitionErrorWithCause(from, to string, cause error) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidStatusTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: from %s to %s (cause: %s)",
			ErrInvalidStatusTransition, sanitize(e.From), sanitize(e.To), e.Cause)
	}
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidStatusTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// DuplicateTrackingNumberError indicates that the store already holds a
// package with the given tracking number.
type DuplicateTrackingNumberError struct {
	TrackingNumber string
	Cause          error
}

// NewDuplicateTrackingNumberError creates a DuplicateTrackingNumberError
// without a cause.
func NewDuplicateTrackingNumberError(trackingNumber string) *DuplicateTrackingNumberError {
	return &DuplicateTrackingNumberError{TrackingNumber: trackingNumber}
}

// NewDuplicateTrackingNumberErrorWithCause creates a DuplicateTrackingNumberError
// wrapping the store-level uniqueness violation.
func NewDuplicateTrackingNumberErrorWithCause(trackingNumber string, cause error) *DuplicateTrackingNumberError {
	return &DuplicateTrackingNumberError{TrackingNumber: trackingNumber, Cause: cause}
}

func (e *DuplicateTrackingNumberError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateTrackingNumber, sanitize(e.TrackingNumber), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateTrackingNumber, sanitize(e.TrackingNumber))
}

func (e *DuplicateTrackingNumberError) Unwrap() error {
	return ErrDuplicateTrackingNumber
}
