package parcelrepo

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM package repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package with its initial history entry to the database.
// A tracking-number collision surfaces as errs.DuplicateTrackingNumberError
// so the caller can regenerate and retry.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewDuplicateTrackingNumberErrorWithCause(aggregate.TrackingNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database.
// The package row is updated in place; history rows are append-only, so new
// entries are inserted and already stored ones are left untouched.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	if len(dto.History) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.History).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a package with its full history by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(ctx, id)
}

// GetForUpdate retrieves a package by ID, locking its row for the remainder
// of the surrounding transaction. Concurrent status updates of the same
// package serialize on this lock.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(ctx, id, clause.Locking{Strength: "UPDATE"})
}

func (r *GormParcelRepository) get(
	ctx context.Context,
	id kernel.UUID,
	conds ...clause.Expression,
) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if len(conds) > 0 {
		db = db.Clauses(conds...)
	}

	var dto ParcelDTO
	err := db.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at, id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
