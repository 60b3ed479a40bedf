package queries_test

import (
	"context"
	"testing"
	"time"

	"flowtrack/internal/adapters/out/postgres/orderrepo"
	"flowtrack/internal/core/application/usecases/queries"
	"flowtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOrdersQueryHandlerIntegrationTestSuite verifies the order read model
// against a real PostgreSQL database.
type GetOrdersQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrdersQueryHandler(db)
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) TestHandle_ReturnsOrdersSortedByNumber() {
	suite.insertOrder("100020", "Warehouse")
	suite.insertOrder("100010", "Production")

	responses, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(responses, 2)
	suite.Equal("100010", responses[0].Number)
	suite.Equal("100020", responses[1].Number)
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) TestHandle_MapsAllFields() {
	inserted := suite.insertOrder("100030", "Production")

	responses, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)

	resp := responses[0]
	suite.Equal(inserted.ID, resp.ID.Bytes())
	suite.Equal("100030", resp.Number)
	suite.Equal("PL01", resp.Plant)
	suite.Equal("MAT-7", resp.Material)
	suite.Equal("2026-01-10", resp.StartDate)
	suite.Equal("2026-02-20", resp.FinishDate)
	suite.True(decimal.NewFromInt(100).Equal(resp.OrderQuantity))
	suite.True(decimal.NewFromInt(40).Equal(resp.DeliveredQuantity))
	suite.Equal("REL PCNF", resp.RawStatus)
	suite.Equal(kernel.AreaProduction, resp.CurrentArea)
	suite.Equal(kernel.AreaWarehouse, resp.SapArea)
	suite.Equal(kernel.SourceManual, resp.Source)
	suite.True(resp.Discrepancy)
	suite.True(resp.HasChanges)
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) TestHandle_FiltersByArea() {
	suite.insertOrder("100040", "Warehouse")
	suite.insertOrder("100041", "Production")
	suite.insertOrder("100042", "Warehouse")

	query := queries.NewGetOrdersQuery().InArea(kernel.AreaWarehouse)
	responses, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(responses, 2)
	suite.Equal("100040", responses[0].Number)
	suite.Equal("100042", responses[1].Number)
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) TestHandle_EmptyDatabase() {
	responses, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(responses)
	suite.Empty(responses)
}

func (suite *GetOrdersQueryHandlerIntegrationTestSuite) TestHandle_InvalidQuery() {
	var query queries.GetOrdersQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrdersQueryIsNotConstructed)
}

// insertOrder writes a manually placed order row with a known field set
// directly into the read model's table.
func (suite *GetOrdersQueryHandlerIntegrationTestSuite) insertOrder(
	number string,
	currentArea string,
) orderrepo.OrderDTO {
	dto := orderrepo.OrderDTO{
		ID:                uuid.New(),
		Number:            number,
		Plant:             "PL01",
		Material:          "MAT-7",
		StartDate:         "2026-01-10",
		FinishDate:        "2026-02-20",
		OrderQuantity:     decimal.NewFromInt(100),
		DeliveredQuantity: decimal.NewFromInt(40),
		RawStatus:         "REL PCNF",
		CurrentArea:       currentArea,
		SapArea:           "Warehouse",
		Source:            "manual",
		Discrepancy:       true,
		ChangedFields:     []string{"system_status"},
		HasChanges:        true,
		Version:           1,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func TestGetOrdersQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerIntegrationTestSuite))
}
