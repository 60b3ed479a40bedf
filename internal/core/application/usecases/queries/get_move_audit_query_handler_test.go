package queries_test

import (
	"context"
	"testing"
	"time"

	"flowtrack/internal/adapters/out/postgres/auditrepo"
	"flowtrack/internal/core/application/usecases/queries"
	"flowtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetMoveAuditQueryHandlerIntegrationTestSuite verifies the move history read
// model against a real PostgreSQL database.
type GetMoveAuditQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMoveAuditQueryHandler
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&auditrepo.MoveAuditEntryDTO{}))

	suite.handler = queries.NewGetMoveAuditQueryHandler(db)
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE move_audit_entries").Error)
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) TestHandle_ReturnsEntriesNewestFirst() {
	orderID := kernel.NewUUID()
	movedAt := time.Now().UTC().Truncate(time.Second)

	older := suite.insertEntry(orderID, "Warehouse", "Production", "", movedAt)
	newer := suite.insertEntry(orderID, "Production", "Warehouse", "wrong station", movedAt.Add(time.Hour))

	query, err := queries.NewGetMoveAuditQuery(orderID)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	suite.Equal(newer.ID, entries[0].ID.Bytes())
	suite.Equal(orderID, entries[0].OrderID)
	suite.Equal(kernel.AreaProduction, entries[0].FromArea)
	suite.Equal(kernel.AreaWarehouse, entries[0].ToArea)
	suite.Equal("wrong station", entries[0].Justification)
	suite.Equal("j.smith", entries[0].Actor)

	suite.Equal(older.ID, entries[1].ID.Bytes())
	suite.Empty(entries[1].Justification)
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) TestHandle_OnlyRequestedOrder() {
	requested := kernel.NewUUID()
	other := kernel.NewUUID()
	movedAt := time.Now().UTC().Truncate(time.Second)

	suite.insertEntry(requested, "Warehouse", "Production", "", movedAt)
	suite.insertEntry(other, "Warehouse", "Logistics", "", movedAt)

	query, err := queries.NewGetMoveAuditQuery(requested)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(requested, entries[0].OrderID)
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) TestHandle_NoEntries() {
	query, err := queries.NewGetMoveAuditQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) TestHandle_InvalidQuery() {
	var query queries.GetMoveAuditQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
}

func (suite *GetMoveAuditQueryHandlerIntegrationTestSuite) insertEntry(
	orderID kernel.UUID,
	fromArea string,
	toArea string,
	justification string,
	movedAt time.Time,
) auditrepo.MoveAuditEntryDTO {
	dto := auditrepo.MoveAuditEntryDTO{
		ID:            uuid.New(),
		OrderID:       orderID.Bytes(),
		FromArea:      fromArea,
		ToArea:        toArea,
		Justification: justification,
		MovedAt:       movedAt,
		Actor:         "j.smith",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func TestGetMoveAuditQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetMoveAuditQueryHandlerIntegrationTestSuite))
}
