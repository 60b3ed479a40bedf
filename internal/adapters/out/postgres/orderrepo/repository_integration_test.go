package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"flowtrack/internal/adapters/out/postgres/orderrepo"
	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/order"
	"flowtrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAllState() {
	ctx := context.Background()

	original := suite.createTestOrder("100001")
	suite.Require().NoError(original.MoveTo(kernel.AreaProduction, kernel.AreaWarehouse))
	original.ReportChanges([]string{order.FieldSystemStatus})

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("100001", retrieved.Number())
	suite.Equal("PL01", retrieved.Plant())
	suite.Equal("MAT-7", retrieved.Material())
	suite.Equal("2026-01-10", retrieved.StartDate())
	suite.Equal("2026-02-20", retrieved.FinishDate())
	suite.True(decimal.NewFromInt(100).Equal(retrieved.OrderQuantity()))
	suite.True(decimal.NewFromInt(40).Equal(retrieved.DeliveredQuantity()))
	suite.Equal("REL PCNF", retrieved.RawStatus())
	suite.Equal(kernel.AreaProduction, retrieved.CurrentArea())
	suite.Equal(kernel.AreaWarehouse, retrieved.SapArea())
	suite.Equal(kernel.SourceManual, retrieved.Source())
	suite.True(retrieved.Discrepancy())
	suite.True(retrieved.HasChanges())
	suite.True(retrieved.FieldChanged(order.FieldSystemStatus))
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()

	original := suite.createTestOrder("100002")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNumber(ctx, "100002")
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	_, err = suite.repository.GetByNumber(ctx, "999999")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_IncrementsVersion() {
	ctx := context.Background()

	original := suite.createTestOrder("100003")
	suite.tracker.On("TrackAggregate", original.ID(), original).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.ApplyMapping(kernel.AreaProduction))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.AreaProduction, retrieved.CurrentArea())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()

	original := suite.createTestOrder("100004")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Two writers load the same snapshot.
	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	// The first writer commits; the second one's snapshot is now stale.
	suite.Require().NoError(first.ApplyMapping(kernel.AreaProduction))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.MoveTo(kernel.AreaLogistics, kernel.AreaWarehouse))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	// The first writer's state won.
	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.AreaProduction, retrieved.CurrentArea())
	suite.Equal(kernel.SourceSystem, retrieved.Source())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.createTestOrder("100005")
	err := suite.repository.Update(ctx, ghost)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsOrdersSortedByNumber() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	for _, number := range []string{"100030", "100010", "100020"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(number)))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("100010", all[0].Number())
	suite.Equal("100020", all[1].Number())
	suite.Equal("100030", all[2].Number())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a system-tracked order in Warehouse with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.ManufacturingOrder {
	testOrder, err := order.NewManufacturingOrder(
		kernel.NewUUID(),
		number,
		"PL01",
		"MAT-7",
		"2026-01-10",
		"2026-02-20",
		decimal.NewFromInt(100),
		decimal.NewFromInt(40),
		"REL PCNF",
		kernel.AreaWarehouse,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
