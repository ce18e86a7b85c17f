package parcelrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tracker/internal/adapters/out/postgres/parcelrepo"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for ParcelRepository
// using PostgreSQL containers to verify database persistence behavior.
// The connection goes through lib/pq, same as production, so driver-level
// errors like unique violations take the same shape as in production.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.HistoryEntryDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel(trackingNumber string) *parcel.Parcel {
	sender, err := parcel.NewContact(parcel.RoleSender, "Alice", "1 Main St", "+15551234567")
	suite.Require().NoError(err)
	recipient, err := parcel.NewContact(parcel.RoleRecipient, "Bob", "2 Side St", "+46701234567")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingNumber, sender, recipient, time.Now().UTC())
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000001")

	err := suite.repository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)

	var historyCount int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.HistoryEntryDTO{}).Count(&historyCount).Error)
	suite.Equal(int64(1), historyCount)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsDuplicateError() {
	ctx := context.Background()

	first := suite.createTestParcel("TRK-20260831-000007")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestParcel("TRK-20260831-000007")
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrDuplicateTrackingNumber)
	suite.assertParcelCount(1)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_NotConstructedParcel_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &parcel.Parcel{})

	suite.Require().Error(err)
	suite.assertParcelCount(0)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_RoundTripsAggregate() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000002")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testParcel.ID()))
	suite.Equal(testParcel.TrackingNumber(), loaded.TrackingNumber())
	suite.Equal(parcel.Created, loaded.Status())
	suite.Equal("Alice", loaded.Sender().Name())
	suite.Equal("Bob", loaded.Recipient().Name())
	suite.Require().Len(loaded.History(), 1)
	suite.Equal("Package created", loaded.History()[0].Description())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistingParcel_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_StatusChange_AppendsHistory() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000003")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	suite.Require().NoError(testParcel.ChangeStatus(parcel.Sent, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Sent, loaded.Status())
	suite.Require().Len(loaded.History(), 2)
	suite.Equal(parcel.Created, loaded.History()[0].Status())
	suite.Equal(parcel.Sent, loaded.History()[1].Status())
	suite.Equal("Status changed to Sent", loaded.History()[1].Description())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_RepeatedUpdate_DoesNotDuplicateHistory() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000004")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	suite.Require().NoError(testParcel.ChangeStatus(parcel.Sent, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.History(), 2)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistingParcel_ReturnsNotFound() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000005")

	err := suite.repository.Update(ctx, testParcel)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingParcel_LoadsAggregate() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000006")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := parcelrepo.NewGormParcelRepository(tx, suite.tracker)
	loaded, err := txRepo.GetForUpdate(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testParcel.ID()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestFullLifecycle_RoundTripsEveryStatus() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("TRK-20260831-000008")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	for _, next := range []parcel.Status{parcel.Sent, parcel.Returned, parcel.Sent, parcel.Accepted} {
		suite.Require().NoError(testParcel.ChangeStatus(next, time.Now().UTC()))
		suite.Require().NoError(suite.repository.Update(ctx, testParcel))
	}

	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Accepted, loaded.Status())
	suite.Require().Len(loaded.History(), 5)
	suite.Empty(loaded.AllowedTransitions())
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
