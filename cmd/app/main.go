package main

import (
	"fmt"
	"log/slog"
	"os"

	"flowtrack/cmd"
	httpadapter "flowtrack/internal/adapters/in/http"
	"flowtrack/internal/adapters/out/collaborators"
	"flowtrack/internal/adapters/out/postgres/auditrepo"
	"flowtrack/internal/adapters/out/postgres/mappingrepo"
	"flowtrack/internal/adapters/out/postgres/moderepo"
	"flowtrack/internal/adapters/out/postgres/orderrepo"
	"flowtrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateApplyStatusMappingsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&mappingrepo.StatusMappingDTO{},
		&moderepo.AreaModeDTO{},
		&auditrepo.MoveAuditEntryDTO{},
		&collaborators.IssueDTO{},
		&collaborators.ProductionStatusDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateIngestOrdersCommandHandler(),
		app.CreateMoveOrderCommandHandler(),
		app.CreateSaveStatusMappingsCommandHandler(),
		app.CreateSetAreaModesCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetMoveAuditQueryHandler(),
		app.CreateGetAreaModesQueryHandler(),
		app.CreateGetStatusMappingsQueryHandler(),
		app.CreateGetFlowErrorsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
