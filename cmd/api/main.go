package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/usecase/appointment"
	"github.com/amirhossein-jamali/medimeet/internal/domain/usecase/availability"
	"github.com/amirhossein-jamali/medimeet/internal/domain/usecase/credit"
	"github.com/amirhossein-jamali/medimeet/internal/domain/usecase/onboarding"
	"github.com/amirhossein-jamali/medimeet/internal/domain/usecase/principal"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/config"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/telemetry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	isProduction := cfg.Environment == "production"
	if isProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(isProduction || cfg.Logger.Format == "json")
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			appLogger.Warn("Failed to flush traces", map[string]any{"error": err.Error()})
		}
	}()

	// Database
	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	uow := dbManager.CreateUnitOfWork()

	if err := migration.SeedAdmins(ctx, uow, cfg.Admins, tp, appLogger); err != nil {
		return fmt.Errorf("failed to seed admins: %w", err)
	}

	// Redis is optional: without it views are not invalidated and requests are not rate limited
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var invalidator coreport.ViewInvalidator = cache.NewNoopViewInvalidator()
	middlewareConfig := routes.MiddlewareConfig{AllowedOrigins: cfg.Server.AllowedOrigins}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		invalidator = cache.NewRedisViewInvalidator(redisClient, cfg.Redis.ViewKeyPrefix, cfg.Redis.ViewChannel, appLogger)
		if cfg.RateLimit.Enabled {
			middlewareConfig.RateLimitClient = redisClient
			middlewareConfig.RateLimit = middleware.RateLimitConfig{
				Requests: cfg.RateLimit.Requests,
				Window:   cfg.RateLimit.Window,
			}
		}
	} else {
		appLogger.Warn("Redis not configured, view invalidation and rate limiting disabled", nil)
	}

	billingLocation, err := time.LoadLocation(cfg.Credits.BillingTimeZone)
	if err != nil {
		return fmt.Errorf("invalid billing time zone: %w", err)
	}

	// Use cases
	identityProvider := identity.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Leeway, tp, appLogger)
	principalService := principal.NewService(uow, identityProvider, tp, appLogger)
	ledger := credit.NewLedger(uow, tp, appLogger)
	creditService := credit.NewService(uow, principalService, invalidator, tp, appLogger).
		WithBillingLocation(billingLocation)
	availabilityService := availability.NewService(uow, invalidator, tp, appLogger)
	appointmentService := appointment.NewService(uow, ledger, invalidator, tp, appLogger)
	onboardingService := onboarding.NewService(uow, invalidator, tp, appLogger)

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, middlewareConfig, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		Health:       handler.NewHealthHandler(dbManager, appLogger),
		User:         handler.NewUserHandler(principalService, onboardingService, appLogger),
		Credit:       handler.NewCreditHandler(creditService, appLogger),
		Availability: handler.NewAvailabilityHandler(availabilityService, appLogger),
		Appointment:  handler.NewAppointmentHandler(appointmentService, appLogger),
		Admin:        handler.NewAdminHandler(onboardingService, appLogger),
	}, principalService, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           telemetry.WrapHandler(router, cfg.Telemetry.ServiceName),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
