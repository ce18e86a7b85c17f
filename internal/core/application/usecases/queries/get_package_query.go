package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQuery constructor",
	)
)

// GetPackageQuery retrieves the full details of a single package: contacts,
// current status, the allowed next statuses, and the complete status history.
//
// Example:
//
//	query, err := NewGetPackageQuery(packageID)
//	if err != nil {
//	    return fmt.Errorf("invalid package id: %w", err)
//	}
//
//	details, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // respond 404
//	}
type GetPackageQuery struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for one package's details.
// Returns an error if the package ID is not valid.
func NewGetPackageQuery(packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, err
	}

	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackageQueryIsNotConstructed if validation fails.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageID returns the identifier of the package to fetch.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

// ContactResponse is one party of a package (sender or recipient).
type ContactResponse struct {
	Name    string
	Address string
	Phone   string
}

// HistoryEntryResponse is one recorded status change of a package.
type HistoryEntryResponse struct {
	ID          string
	Status      string
	ChangedAt   time.Time
	Description string
}

// GetPackageQueryResponse is the full detail view of a package.
// History is ordered oldest first; AllowedTransitions lists the status
// labels legally reachable from the current status.
type GetPackageQueryResponse struct {
	ID                 string
	TrackingNumber     string
	Sender             ContactResponse
	Recipient          ContactResponse
	Status             string
	CreatedAt          time.Time
	AllowedTransitions []string
	History            []HistoryEntryResponse
}
