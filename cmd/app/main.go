package main

import (
	"fmt"
	"log/slog"
	"os"

	"pickpoint/cmd"
	httpin "pickpoint/internal/adapters/in/http"
	pgadapter "pickpoint/internal/adapters/out/postgres"
	"pickpoint/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := pgadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := jobs.NewJobManager(
		app.CreateGetOpenPostautomatsQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateChangeOrderCompositionCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetPostautomatQueryHandler(),
		app.CreateGetOpenPostautomatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
