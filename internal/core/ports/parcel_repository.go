package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for package aggregates.
// Implementations must persist a package together with its full status
// history: the aggregate is stored and loaded as one unit so the status
// field and the history can never drift apart for a reader.
type ParcelRepository interface {
	// Add persists a new package aggregate with its initial history entry.
	// The package and the entry become visible together or not at all.
	// Returns errs.DuplicateTrackingNumberError if the tracking number is
	// already taken.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists a status change: the package row and the appended
	// history entries are written in the surrounding transaction as one
	// atomic unit. The package must already exist.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a package by its unique identifier, including the full
	// status history in chronological order.
	// Returns errs.ObjectNotFoundError if no such package exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate behaves like Get but additionally takes a write lock on
	// the package row for the duration of the surrounding transaction.
	// Concurrent status updates of the same package serialize on this lock,
	// so a second writer observes the first writer's committed status.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}
