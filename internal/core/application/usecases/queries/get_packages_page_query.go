// Package queries contains read-only operations for retrieving package data.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection rows directly.
package queries

import (
	"errors"
	"time"

	"tracker/internal/pkg/guard"
)

var (
	ErrGetPackagesPageQueryIsNotConstructed = errors.New(
		"GetPackagesPageQuery must be created via NewGetPackagesPageQuery constructor",
	)
)

// Paging defaults. Out-of-range requests are coerced to these values rather
// than rejected, so a sloppy client still gets a sensible page.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// GetPackagesPageQuery retrieves one page of the package list, optionally
// narrowed by a search term. The term matches tracking numbers as a
// case-insensitive substring and status names as a case-insensitive
// substring of their labels.
//
// Page numbers below 1 and page sizes outside [1, MaxPageSize] are replaced
// with the defaults at construction time, so a constructed query always
// carries usable paging values.
//
// Example:
//
//	query := NewGetPackagesPageQuery(2, 20, "sent")
//	handler := NewGetPackagesPageQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list packages: %w", err)
//	}
//
//	fmt.Printf("%d of %d packages\n", len(page.Packages), page.TotalCount)
type GetPackagesPageQuery struct {
	page     int
	pageSize int
	search   string

	guard guard.ConstructorGuard
}

// NewGetPackagesPageQuery creates a query for one page of the package list.
// Invalid paging values are coerced to the defaults; search may be empty.
func NewGetPackagesPageQuery(page int, pageSize int, search string) GetPackagesPageQuery {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return GetPackagesPageQuery{
		page:     page,
		pageSize: pageSize,
		search:   search,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackagesPageQueryIsNotConstructed if validation fails.
func (q GetPackagesPageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesPageQueryIsNotConstructed)
}

// Page returns the requested page number (1-based).
func (q GetPackagesPageQuery) Page() int {
	return q.page
}

// PageSize returns the number of packages per page.
func (q GetPackagesPageQuery) PageSize() int {
	return q.pageSize
}

// Search returns the search term, empty when the listing is unfiltered.
func (q GetPackagesPageQuery) Search() string {
	return q.search
}

// PackageSummaryResponse is one row of the package listing.
type PackageSummaryResponse struct {
	ID             string
	TrackingNumber string
	SenderName     string
	RecipientName  string
	Status         string
	CreatedAt      time.Time
}

// GetPackagesPageQueryResponse is a page of the package listing together
// with the paging envelope the HTTP layer serializes verbatim.
type GetPackagesPageQueryResponse struct {
	Packages    []PackageSummaryResponse
	TotalCount  int64
	TotalPages  int
	CurrentPage int
	PageSize    int
	HasNext     bool
	HasPrevious bool
}
