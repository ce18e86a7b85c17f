package http

import (
	"errors"
	"fmt"
	"net/http"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/generated/servers"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler commands.CreateParcelCommandHandler
	updateStatusHandler  commands.UpdateParcelStatusCommandHandler

	// Query handlers
	getPackagesPageHandler queries.GetPackagesPageQueryHandler
	getPackageHandler      queries.GetPackageQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPackageHandler commands.CreateParcelCommandHandler,
	updateStatusHandler commands.UpdateParcelStatusCommandHandler,
	getPackagesPageHandler queries.GetPackagesPageQueryHandler,
	getPackageHandler queries.GetPackageQueryHandler,
) *Server {
	return &Server{
		createPackageHandler:   createPackageHandler,
		updateStatusHandler:    updateStatusHandler,
		getPackagesPageHandler: getPackagesPageHandler,
		getPackageHandler:      getPackageHandler,
	}
}

// GetPackages handles GET /package - lists packages with optional search and paging.
func (s *Server) GetPackages(ctx echo.Context, params servers.GetPackagesParams) error {
	query := queries.NewGetPackagesPageQuery(
		lo.FromPtrOr(params.Page, queries.DefaultPage),
		lo.FromPtrOr(params.PageSize, queries.DefaultPageSize),
		lo.FromPtr(params.SearchTerm),
	)

	page, err := s.getPackagesPageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve packages",
		})
	}

	return ctx.JSON(http.StatusOK, servers.PackagesPage{
		Packages: lo.Map(page.Packages, func(p queries.PackageSummaryResponse, _ int) servers.PackageSummary {
			return servers.PackageSummary{
				Id:             p.ID,
				TrackingNumber: p.TrackingNumber,
				SenderName:     p.SenderName,
				RecipientName:  p.RecipientName,
				Status:         servers.PackageStatus(p.Status),
				CreatedAt:      p.CreatedAt,
			}
		}),
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	})
}

// CreatePackage handles POST /package - creates a new package.
// The status and tracking number are never taken from the caller: the
// package always starts in Created with a server-generated tracking number.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var newPackage servers.NewPackage
	if err := ctx.Bind(&newPackage); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if fields := validateNewPackage(newPackage); len(fields) > 0 {
		return validationFailed(ctx, fields)
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(packageID,
		newPackage.SenderName, newPackage.SenderAddress, newPackage.SenderPhone,
		newPackage.RecipientName, newPackage.RecipientAddress, newPackage.RecipientPhone)
	if err != nil {
		return validationFailed(ctx, fieldViolations(err))
	}

	if err = s.createPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	details, err := s.loadDetails(ctx, packageID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/package/%s", details.Id))
	return ctx.JSON(http.StatusCreated, details)
}

// GetPackageById handles GET /package/{id} - returns one package with history.
func (s *Server) GetPackageById(ctx echo.Context, id string) error {
	packageID, err := kernel.UUIDFromString(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid package id",
		})
	}

	details, err := s.loadDetails(ctx, packageID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// UpdatePackageStatus handles PUT /package/{id}/status - moves a package to a new status.
func (s *Server) UpdatePackageStatus(ctx echo.Context, id string) error {
	packageID, err := kernel.UUIDFromString(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid package id",
		})
	}

	var newStatus servers.NewStatus
	if err = ctx.Bind(&newStatus); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := parcel.StatusFromString(string(newStatus.NewStatus))
	if err != nil {
		return validationFailed(ctx, fieldViolations(err))
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(packageID, status)
	if err != nil {
		return validationFailed(ctx, fieldViolations(err))
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	details, err := s.loadDetails(ctx, packageID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// loadDetails runs the detail query and maps the result to the wire type.
func (s *Server) loadDetails(ctx echo.Context, packageID kernel.UUID) (servers.PackageDetails, error) {
	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return servers.PackageDetails{}, err
	}

	details, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.PackageDetails{}, err
	}

	return servers.PackageDetails{
		Id:               details.ID,
		TrackingNumber:   details.TrackingNumber,
		SenderName:       details.Sender.Name,
		SenderAddress:    details.Sender.Address,
		SenderPhone:      details.Sender.Phone,
		RecipientName:    details.Recipient.Name,
		RecipientAddress: details.Recipient.Address,
		RecipientPhone:   details.Recipient.Phone,
		Status:           servers.PackageStatus(details.Status),
		CreatedAt:        details.CreatedAt,
		AllowedTransitions: lo.Map(details.AllowedTransitions, func(label string, _ int) servers.PackageStatus {
			return servers.PackageStatus(label)
		}),
		StatusHistory: lo.Map(details.History, func(entry queries.HistoryEntryResponse, _ int) servers.HistoryEntry {
			return servers.HistoryEntry{
				Id:          entry.ID,
				Status:      servers.PackageStatus(entry.Status),
				ChangedAt:   entry.ChangedAt,
				Description: lo.ToPtr(entry.Description),
			}
		}),
	}, nil
}

// respondError maps domain failures onto HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var transitionErr *errs.InvalidStatusTransitionError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Package not found",
		})
	case errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: transitionErr.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return validationFailed(ctx, fieldViolations(err))
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func validationFailed(ctx echo.Context, fields []string) error {
	return ctx.JSON(http.StatusBadRequest, servers.ValidationError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	})
}
