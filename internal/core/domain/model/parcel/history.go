package parcel

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry instance was
	// not created through NewHistoryEntry or RestoreHistoryEntry.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry",
	)
)

// HistoryEntry is one immutable record in a package's status history.
// An entry is written exactly once per transition, including the initial
// Created transition at package creation, and is never mutated or deleted
// individually afterwards.
//
// The entry references its owning package by id only; the package owns the
// ordered collection, so no reference cycle exists.
type HistoryEntry struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	status      Status
	changedAt   time.Time
	description string

	isConstructed bool
}

// NewHistoryEntry creates a history record for the given package and status.
// The description is free text and may be empty.
func NewHistoryEntry(
	parcelID kernel.UUID,
	status Status,
	changedAt time.Time,
	description string,
) (HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), parcelID, status, changedAt, description)
}

// RestoreHistoryEntry reconstructs a history record from persistence, keeping
// the identifier it was stored under. Used by the repository layer.
func RestoreHistoryEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	changedAt time.Time,
	description string,
) (HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		status.Validate(),
	); err != nil {
		return HistoryEntry{}, err
	}

	if changedAt.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("changedAt")
	}

	return HistoryEntry{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		changedAt:     changedAt,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// ParcelID returns the identifier of the owning package.
func (h HistoryEntry) ParcelID() kernel.UUID {
	return h.parcelID
}

// Status returns the status recorded by the entry.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ChangedAt returns the time the status was reached.
func (h HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

// Description returns the optional free-text note for the entry.
func (h HistoryEntry) Description() string {
	return h.description
}
