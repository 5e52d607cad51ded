package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"freightmatch/cmd"
	httpin "freightmatch/internal/adapters/in/http"
	"freightmatch/internal/adapters/out/sqlitedb"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	gormDB, err := sqlitedb.OpenDB(configs.DBPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBPath:       goDotEnvVariable("DB_PATH"),
		SnapshotPath: goDotEnvVariable("SNAPSHOT_PATH"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateUpdateProfileCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetActiveOrderQueryHandler(),
		app.CreateGetProfileQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
