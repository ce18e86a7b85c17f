package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetPackageQueryHandler reads one package with its status history from the
// database.
//
// Example:
//
//	handler := NewGetPackageQueryHandler(db)
//	query, _ := NewGetPackageQuery(packageID)
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get package: %v", err)
//	    return err
//	}
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for package detail queries.
// Requires a GORM database connection for query execution.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns errs.ObjectNotFoundError when no package has the given ID.
// History entries are ordered by change time, oldest first.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	var id uuid.UUID
	var trackingNumber string
	var sender, recipient ContactResponse
	var status int
	var createdAt time.Time

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_name,
			sender_address,
			sender_phone,
			recipient_name,
			recipient_address,
			recipient_phone,
			status,
			created_at
		FROM parcels
		WHERE id = ?
	`, query.PackageID().Bytes()).Row().Scan(
		&id,
		&trackingNumber,
		&sender.Name,
		&sender.Address,
		&sender.Phone,
		&recipient.Name,
		&recipient.Address,
		&recipient.Phone,
		&status,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPackageQueryResponse{}, errs.NewObjectNotFoundError("packageID", query.PackageID())
	}
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	history, err := h.readHistory(ctx, id)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	currentStatus := parcel.Status(status)

	return GetPackageQueryResponse{
		ID:             id.String(),
		TrackingNumber: trackingNumber,
		Sender:         sender,
		Recipient:      recipient,
		Status:         currentStatus.String(),
		CreatedAt:      createdAt,
		AllowedTransitions: lo.Map(currentStatus.AllowedTransitions(),
			func(s parcel.Status, _ int) string { return s.String() }),
		History: history,
	}, nil
}

func (h GetPackageQueryHandler) readHistory(
	ctx context.Context,
	parcelID uuid.UUID,
) ([]HistoryEntryResponse, error) {
	history := make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			changed_at,
			description
		FROM parcel_status_history
		WHERE parcel_id = ?
		ORDER BY changed_at, id
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status int
		var changedAt time.Time
		var description string

		if err = rows.Scan(&id, &status, &changedAt, &description); err != nil {
			return nil, err
		}

		history = append(history, HistoryEntryResponse{
			ID:          id.String(),
			Status:      parcel.Status(status).String(),
			ChangedAt:   changedAt,
			Description: description,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
