package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/PPKK-Project/Tlan/internal/adapters/database/pgsql"
	"github.com/PPKK-Project/Tlan/internal/adapters/external"
	"github.com/PPKK-Project/Tlan/internal/catalog"
	"github.com/PPKK-Project/Tlan/internal/core/services"
	"github.com/PPKK-Project/Tlan/internal/handlers"
	"github.com/PPKK-Project/Tlan/internal/middleware"
	"github.com/PPKK-Project/Tlan/internal/scheduler"
	"github.com/PPKK-Project/Tlan/pkg/config"
	"github.com/PPKK-Project/Tlan/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	rateRepo := pgsql.NewCurrencyRateRepository(dbPool)
	countryRepo := pgsql.NewCountryInfoRepository(dbPool)
	airportRepo := pgsql.NewAirportRepository(dbPool)

	// External provider clients
	ratesClient := external.NewRatesClient(cfg.CurrencyAPIURL, cfg.CurrencyAPIKey, cfg.ProviderTimeout)
	safetyClient := external.NewSafetyClient(cfg.SafetyAPIURL, cfg.SafetyAPIKey, cfg.ProviderTimeout)

	// Services
	countryInfoService := services.NewCountryInfoService(rateRepo, countryRepo, catalog.CountryCurrency, catalog.CountryName, logger)
	rateSyncService := services.NewRateSyncService(ratesClient, rateRepo, countryInfoService, logger)
	safetyCacheService := services.NewSafetyCacheService(safetyClient, logger)
	airportService := services.NewAirportService(airportRepo, catalog.Airports, logger)
	bootstrapService := services.NewBootstrapService(airportService, rateSyncService, countryInfoService, safetyCacheService, logger)

	// Ordered bootstrap runs to completion before the server accepts traffic.
	if err := bootstrapService.Run(context.Background()); err != nil {
		logger.Error("Bootstrap failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Recurring refresh jobs: two independent daily schedules.
	sched := scheduler.New(logger)
	if err := sched.Register(cfg.CurrencySyncSchedule, "currency_sync", rateSyncService.SyncAndRebuild); err != nil {
		logger.Error("Failed to register currency sync job", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := sched.Register(cfg.SafetyRefreshSchedule, "safety_refresh", safetyCacheService.RefreshSafetyCache); err != nil {
		logger.Error("Failed to register safety refresh job", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), limiter.Rate{Period: time.Minute, Limit: 120})))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/health", handlers.GetHealth)

	v1 := r.Group("/api/v1")
	handlers.RegisterRefDataRoutes(v1, handlers.RefDataServices{
		Rates:       rateSyncService,
		CountryInfo: countryInfoService,
		Airports:    airportService,
		Safety:      safetyCacheService,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
