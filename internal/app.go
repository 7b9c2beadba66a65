// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "gamestore-api/internal/api"
	"gamestore-api/internal/api/handler"
	"gamestore-api/internal/config"
	"gamestore-api/internal/repository"
	"gamestore-api/internal/repository/postgres"
	"gamestore-api/internal/seed"
	"gamestore-api/internal/service"
	"gamestore-api/internal/util"
	"gamestore-api/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	GameRepository         repository.GameRepository
	UserProfileRepository  repository.UserProfileRepository
	PurchaseRepository     repository.PurchaseRepository
	SubscriptionRepository repository.SubscriptionRepository

	// Services
	StoreService service.StoreService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.RunMigrations(app.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Schema migrations applied.")

	// 4. Initialize Repositories
	app.GameRepository = postgres.NewGameRepository(app.DB)
	app.UserProfileRepository = postgres.NewUserProfileRepository(app.DB)
	app.PurchaseRepository = postgres.NewPurchaseRepository(app.DB)
	app.SubscriptionRepository = postgres.NewSubscriptionRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Seed the catalog
	if app.Config.SeedOnStart {
		seeder := seed.NewCatalogSeeder(
			app.DB,
			app.GameRepository,
			db.BeginTx,
			db.CommitTx,
			db.RollbackTx,
			nil,
			app.Logger,
		)
		if err := seeder.Run(ctx); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// 6. Initialize Services
	app.StoreService = service.NewStoreService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.GameRepository,
		app.UserProfileRepository,
		app.PurchaseRepository,
		app.SubscriptionRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		nil,
	)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	storeHandler := handler.NewStoreHandler(app.StoreService, app.Logger)
	app.HTTPHandler = router.NewRouter(storeHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
