package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"orders/cmd"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.DraftTTL > 0 {
		jobManager := jobs.NewJobManager(
			app.CreateCancelStaleDraftsCommandHandler(),
			configs.DraftTTL,
			slog.Default(),
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start background jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

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
		DraftTTL:   parseDraftTTL(goDotEnvVariable("DRAFT_TTL")),
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

// parseDraftTTL reads the draft time-to-live; an empty value disables the
// expiry job.
func parseDraftTTL(raw string) time.Duration {
	if raw == "" {
		return 0
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl < 0 {
		log.Fatalf("Invalid DRAFT_TTL value: %q", raw)
	}
	return ttl
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
