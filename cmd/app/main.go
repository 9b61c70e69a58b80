package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"tableside/cmd"
	tshttp "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateArchiveCompletedOrdersCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		PublicBaseURL:        goDotEnvVariable("PUBLIC_BASE_URL"),
		CodeSheetTotalTables: intEnvVariable("CODE_SHEET_TOTAL_TABLES"),
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

func intEnvVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	codeSheetPageHandler, err := app.CreateGetCodeSheetPageQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build code sheet page handler: %v", err)
	}
	renderCodeSheetHandler, err := app.CreateRenderCodeSheetQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build code sheet renderer: %v", err)
	}

	server := tshttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateArchiveOrderCommandHandler(),
		app.CreateArchiveCompletedOrdersCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetArchivedOrdersQueryHandler(),
		app.CreateGetTableOrdersQueryHandler(),
		app.CreateExportOrdersQueryHandler(),
		codeSheetPageHandler,
		renderCodeSheetHandler,
		app.TableLinkResolver(),
		app.CodeImageGenerator(),
	)

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
