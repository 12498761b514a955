package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shop/cmd"
	shophttp "shop/internal/adapters/in/http"
	"shop/internal/adapters/in/script"
	"shop/internal/adapters/out/memory"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/ports"
	"shop/internal/jobs"
	"shop/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	uowFactory := createUnitOfWorkFactory(configs)
	app := cmd.NewCompositionRoot(configs, uowFactory)
	shopMetrics := metrics.NewShopMetrics(prometheus.DefaultRegisterer)

	if configs.SeedDemoData == "true" {
		seedDemoCatalog(app)
	}

	if configs.ScriptPath != "" {
		runScript(app, shopMetrics, configs.ScriptPath)
	}

	jobManager := jobs.NewJobManager(app.CreateGetOldestOrderPerStatusQueryHandler(), slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, shopMetrics, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("No .env file found, using environment and defaults")
	}

	config := cmd.Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		Storage:                getEnv("STORAGE", "memory"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", "postgres"),
		DBName:                 getEnv("DB_NAME", "shop"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		ScriptPath:             getEnv("SCRIPT_PATH", ""),
		SeedDemoData:           getEnv("SEED_DEMO_DATA", ""),
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func createUnitOfWorkFactory(configs cmd.Config) ports.UnitOfWorkFactory {
	switch configs.Storage {
	case "postgres":
		return createGormUnitOfWorkFactory(configs)
	case "memory":
		return memory.NewUnitOfWorkFactory(memory.NewStore())
	default:
		log.Fatalf("Unknown storage %q, want memory or postgres", configs.Storage)
		return nil
	}
}

func createGormUnitOfWorkFactory(configs cmd.Config) ports.UnitOfWorkFactory {
	if err := createDbIfNotExists(configs); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&productrepo.ProductDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return postgres.NewGormUnitOfWorkFactory(db)
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it does not exist yet.
func createDbIfNotExists(configs cmd.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName))
	}
	return err
}

func seedDemoCatalog(app cmd.CompositionRoot) {
	handler := app.CreateAddProductCommandHandler()
	for id, name := range map[string]string{"1": "Banana", "2": "Kiwi", "3": "Pear", "4": "Orange"} {
		command, err := commands.NewAddProductCommand(id, name)
		if err != nil {
			log.Fatalf("Failed to build demo product %s: %v", id, err)
		}
		if err := handler.Handle(context.Background(), command); err != nil {
			log.Fatalf("Failed to seed demo product %s: %v", id, err)
		}
	}
	slog.Info("Seeded demo catalog", "products", 4)
}

func runScript(app cmd.CompositionRoot, shopMetrics *metrics.ShopMetrics, path string) {
	interpreter := script.NewInterpreter(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		os.Stdout,
		shopMetrics,
	)

	diagnostics, err := interpreter.RunFile(context.Background(), path)
	if err != nil {
		if errors.Is(err, script.ErrSourceUnavailable) {
			slog.Error("Could not read script", "path", path, "error", err)
			return
		}
		slog.Error("Script run failed", "path", path, "error", err)
		return
	}

	for _, diagnostic := range diagnostics {
		slog.Warn("Script line failed", "line", diagnostic.Line, "number", diagnostic.LineNumber, "error", diagnostic.Err)
	}
}

func startWebServer(app cmd.CompositionRoot, shopMetrics *metrics.ShopMetrics, port string) {
	server := shophttp.NewServer(
		app.CreateAddProductCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetAllProductsQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetOldestOrderPerStatusQueryHandler(),
		app.CreateOrderEventPublisher(),
		shopMetrics,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
