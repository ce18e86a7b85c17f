// Package parcelrepo provides data transfer objects and mapping functions for package persistence.
// This package implements the repository pattern for the package domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ParcelDTO represents the database structure for persisting package aggregates.
// The tracking number carries a unique index so the database stays the single
// authority on tracking-number uniqueness; status and created_at are indexed
// for the listing query.
type ParcelDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber string     `gorm:"uniqueIndex;not null"`
	Sender         ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient      ContactDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Status         int        `gorm:"index"`
	CreatedAt      time.Time  `gorm:"index"`

	History []HistoryEntryDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for package entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO represents the embedded sender or recipient columns within the
// parcels table.
type ContactDTO struct {
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`
	Phone   string `gorm:"not null"`
}

// HistoryEntryDTO represents one row of a package's status history.
// Rows are only ever inserted; the history is append-only.
type HistoryEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Status      int
	ChangedAt   time.Time
	Description string
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "parcel_status_history"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Sender:         contactFromDomain(aggregate.Sender()),
		Recipient:      contactFromDomain(aggregate.Recipient()),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		History: lo.Map(aggregate.History(), func(entry parcel.HistoryEntry, _ int) HistoryEntryDTO {
			return historyFromDomain(entry)
		}),
	}
}

func contactFromDomain(contact parcel.Contact) ContactDTO {
	return ContactDTO{
		Name:    contact.Name(),
		Address: contact.Address(),
		Phone:   contact.Phone(),
	}
}

func historyFromDomain(entry parcel.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:          entry.ID().Bytes(),
		ParcelID:    entry.ParcelID().Bytes(),
		Status:      int(entry.Status()),
		ChangedAt:   entry.ChangedAt(),
		Description: entry.Description(),
	}
}

// toDomain converts a database DTO to a package domain aggregate.
// Reconstructs the complete aggregate including its status history using
// RestoreParcel, so the aggregate invariants are re-checked on every load.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sender, err := parcel.NewContact(parcel.RoleSender, dto.Sender.Name, dto.Sender.Address, dto.Sender.Phone)
	if err != nil {
		return nil, err
	}

	recipient, err := parcel.NewContact(parcel.RoleRecipient, dto.Recipient.Name, dto.Recipient.Address, dto.Recipient.Phone)
	if err != nil {
		return nil, err
	}

	history := make([]parcel.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entry, entryErr := historyToDomain(entryDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingNumber,
		sender,
		recipient,
		parcel.Status(dto.Status),
		dto.CreatedAt,
		history,
	)
}

func historyToDomain(dto HistoryEntryDTO) (parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	return parcel.RestoreHistoryEntry(
		id,
		parcelID,
		parcel.Status(dto.Status),
		dto.ChangedAt,
		dto.Description,
	)
}
