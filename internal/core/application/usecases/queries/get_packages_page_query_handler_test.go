package queries_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"tracker/internal/adapters/out/postgres/parcelrepo"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository's tracker dependency where
// tracking is irrelevant to the test.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetPackagesPageQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPackagesPageQueryHandler
	repo      *parcelrepo.GormParcelRepository
}

func (suite *GetPackagesPageQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.HistoryEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPackagesPageQueryHandler(db)
	suite.repo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPackagesPageQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error)
}

// seedParcel stores a package created at the given time, optionally moved
// through followup statuses.
func (suite *GetPackagesPageQueryHandlerTestSuite) seedParcel(
	trackingNumber string,
	createdAt time.Time,
	transitions ...parcel.Status,
) *parcel.Parcel {
	sender, err := parcel.NewContact(parcel.RoleSender, "Alice", "1 Main St", "+15551234567")
	suite.Require().NoError(err)
	recipient, err := parcel.NewContact(parcel.RoleRecipient, "Bob", "2 Side St", "+46701234567")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingNumber, sender, recipient, createdAt)
	suite.Require().NoError(err)

	at := createdAt
	for _, next := range transitions {
		at = at.Add(time.Minute)
		suite.Require().NoError(p.ChangeStatus(next, at))
	}

	suite.Require().NoError(suite.repo.Add(context.Background(), p))
	return p
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query := queries.NewGetPackagesPageQuery(1, 10, "")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Packages)
	suite.Empty(result.Packages)
	suite.Equal(int64(0), result.TotalCount)
	suite.Equal(0, result.TotalPages)
	suite.False(result.HasNext)
	suite.False(result.HasPrevious)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_OrdersByCreationTime() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000002", base.Add(time.Hour))
	suite.seedParcel("TRK-20260801-000001", base)
	suite.seedParcel("TRK-20260801-000003", base.Add(2*time.Hour))

	query := queries.NewGetPackagesPageQuery(1, 10, "")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 3)
	suite.Equal("TRK-20260801-000001", result.Packages[0].TrackingNumber)
	suite.Equal("TRK-20260801-000002", result.Packages[1].TrackingNumber)
	suite.Equal("TRK-20260801-000003", result.Packages[2].TrackingNumber)
	suite.Equal("Alice", result.Packages[0].SenderName)
	suite.Equal("Bob", result.Packages[0].RecipientName)
	suite.Equal("Created", result.Packages[0].Status)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_PagesThroughResults() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		suite.seedParcel(fmt.Sprintf("TRK-20260801-%06d", i+1), base.Add(time.Duration(i)*time.Minute))
	}

	firstPage, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 2, ""))
	suite.Require().NoError(err)
	suite.Require().Len(firstPage.Packages, 2)
	suite.Equal(int64(5), firstPage.TotalCount)
	suite.Equal(3, firstPage.TotalPages)
	suite.Equal(1, firstPage.CurrentPage)
	suite.Equal(2, firstPage.PageSize)
	suite.True(firstPage.HasNext)
	suite.False(firstPage.HasPrevious)
	suite.Equal("TRK-20260801-000001", firstPage.Packages[0].TrackingNumber)

	lastPage, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(3, 2, ""))
	suite.Require().NoError(err)
	suite.Require().Len(lastPage.Packages, 1)
	suite.False(lastPage.HasNext)
	suite.True(lastPage.HasPrevious)
	suite.Equal("TRK-20260801-000005", lastPage.Packages[0].TrackingNumber)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_PageBeyondResults_ReturnsEmptyPage() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000001", base)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(4, 10, ""))

	suite.Require().NoError(err)
	suite.Empty(result.Packages)
	suite.Equal(int64(1), result.TotalCount)
	suite.False(result.HasNext)
	suite.True(result.HasPrevious)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_SearchByTrackingNumberFragment() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000123", base)
	suite.seedParcel("TRK-20260801-000456", base.Add(time.Minute))

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 10, "000123"))

	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Equal("TRK-20260801-000123", result.Packages[0].TrackingNumber)
	suite.Equal(int64(1), result.TotalCount)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_SearchIsCaseInsensitive() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000123", base)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 10, "trk-20260801"))

	suite.Require().NoError(err)
	suite.Len(result.Packages, 1)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_SearchByStatusLabel() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000001", base, parcel.Sent)
	suite.seedParcel("TRK-20260801-000002", base.Add(time.Minute))
	suite.seedParcel("TRK-20260801-000003", base.Add(2*time.Minute), parcel.Sent, parcel.Accepted)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 10, "sent"))

	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Equal("TRK-20260801-000001", result.Packages[0].TrackingNumber)
	suite.Equal("Sent", result.Packages[0].Status)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_SearchMatchingNoStatusFallsBackToTracking() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000001", base)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 10, "nonexistent"))

	suite.Require().NoError(err)
	suite.Empty(result.Packages)
	suite.Equal(int64(0), result.TotalCount)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_SearchTreatsWildcardsAsLiterals() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedParcel("TRK-20260801-000123", base)

	// "_" and "%" are LIKE metacharacters; as search input they must only
	// match themselves, so neither term may hit the seeded package.
	underscore, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 10, "000_23"))
	suite.Require().NoError(err)
	suite.Empty(underscore.Packages)
	suite.Equal(int64(0), underscore.TotalCount)

	percent, err := suite.handler.Handle(context.Background(), queries.NewGetPackagesPageQuery(1, 10, "%123"))
	suite.Require().NoError(err)
	suite.Empty(percent.Packages)
	suite.Equal(int64(0), percent.TotalCount)
}

func (suite *GetPackagesPageQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPackagesPageQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetPackagesPageQueryIsNotConstructed)
}

func TestGetPackagesPageQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPackagesPageQueryHandlerTestSuite))
}
