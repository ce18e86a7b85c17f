package queries

import (
	"context"
	"strings"
	"time"

	"tracker/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetPackagesPageQueryHandler reads one page of the package listing from the
// database. Search and paging are pushed down to SQL so only the requested
// page is materialized.
//
// Example:
//
//	handler := NewGetPackagesPageQueryHandler(db)
//	query := NewGetPackagesPageQuery(1, 10, "")
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list packages: %v", err)
//	    return err
//	}
type GetPackagesPageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackagesPageQueryHandler creates a handler for package listing queries.
// Requires a GORM database connection for query execution.
func NewGetPackagesPageQueryHandler(db *gorm.DB) GetPackagesPageQueryHandler {
	return GetPackagesPageQueryHandler{db: db}
}

// Handle executes the listing query.
// Counts the matching packages, then reads the requested page ordered by
// creation time (package ID breaks ties so paging is stable across requests).
func (h GetPackagesPageQueryHandler) Handle(
	ctx context.Context,
	query GetPackagesPageQuery,
) (GetPackagesPageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackagesPageQueryResponse{}, err
	}

	where, args := buildSearchClause(query.Search())

	var totalCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM parcels `+where, args...).
		Row().
		Scan(&totalCount)
	if err != nil {
		return GetPackagesPageQueryResponse{}, err
	}

	packages := make([]PackageSummaryResponse, 0, query.PageSize())

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_name,
			recipient_name,
			status,
			created_at
		FROM parcels `+where+`
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return GetPackagesPageQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var trackingNumber, senderName, recipientName string
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&trackingNumber,
			&senderName,
			&recipientName,
			&status,
			&createdAt,
		)
		if err != nil {
			return GetPackagesPageQueryResponse{}, err
		}

		packages = append(packages, PackageSummaryResponse{
			ID:             id.String(),
			TrackingNumber: trackingNumber,
			SenderName:     senderName,
			RecipientName:  recipientName,
			Status:         parcel.Status(status).String(),
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetPackagesPageQueryResponse{}, err
	}

	totalPages := int((totalCount + int64(query.PageSize()) - 1) / int64(query.PageSize()))

	return GetPackagesPageQueryResponse{
		Packages:    packages,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: query.Page(),
		PageSize:    query.PageSize(),
		HasNext:     query.Page() < totalPages,
		HasPrevious: query.Page() > 1,
	}, nil
}

// likeEscaper neutralizes the LIKE metacharacters so a search term only ever
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// buildSearchClause turns a search term into a SQL WHERE fragment.
// Tracking numbers match as a case-insensitive substring; statuses match
// when the term is a case-insensitive substring of the status label, with
// the matching labels resolved here so the stored integers stay an
// implementation detail of the schema.
func buildSearchClause(search string) (string, []any) {
	if search == "" {
		return "", nil
	}

	matching := lo.FilterMap(parcel.AllStatuses(), func(s parcel.Status, _ int) (int, bool) {
		return int(s), strings.Contains(strings.ToLower(s.String()), strings.ToLower(search))
	})

	pattern := "%" + likeEscaper.Replace(search) + "%"
	if len(matching) == 0 {
		return "WHERE tracking_number ILIKE ?", []any{pattern}
	}
	return "WHERE tracking_number ILIKE ? OR status IN ?", []any{pattern, matching}
}
