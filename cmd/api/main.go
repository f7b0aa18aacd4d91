package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/querykicks/querykicks/internal/domain/usecase/auth"
	cartUseCase "github.com/querykicks/querykicks/internal/domain/usecase/cart"
	catalogUseCase "github.com/querykicks/querykicks/internal/domain/usecase/catalog"
	checkoutUseCase "github.com/querykicks/querykicks/internal/domain/usecase/checkout"
	userUseCase "github.com/querykicks/querykicks/internal/domain/usecase/user"

	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/handler"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/routes"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/database"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/database/migration"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/events"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/logger"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/repository"
	timeProvider "github.com/querykicks/querykicks/internal/infrastructure/adapter/time"
	"github.com/querykicks/querykicks/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger, rotating through a file when one is configured
	var appLogger coreport.Logger
	if cfg.Logger.Output != "" && cfg.Logger.Output != "stdout" {
		appLogger = logger.NewZapFileLogger(cfg.Logger.Output, 100, 5, 30)
	} else {
		appLogger = logger.NewZapLogger(cfg.Environment == config.Production)
	}
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	// Setup database configuration, letting QK_DB_* environment
	// variables take precedence over the config file
	dbConfig := database.CreateConfigFromViperConfig(cfg)

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	productRepo := repository.NewProductRepository(dbManager.DB(), appLogger)
	cartRepo := repository.NewCartRepository(dbManager.DB(), tp, appLogger)
	orderRepo := repository.NewOrderRepository(dbManager.DB(), appLogger)
	sessionRepo := repository.NewSessionRepository(dbManager.DB(), tp, appLogger)
	userLockRepo := repository.NewUserLockRepository(dbManager.DB(), tp, appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Seed default accounts and starter catalog
	seeder := migration.NewSeeder(userRepo, productRepo, tp, appLogger, cfg.Auth.BcryptCost)
	if err := seeder.SeedAll(context.Background()); err != nil {
		appLogger.Error("Failed to seed default data", map[string]any{
			"error": err.Error(),
		})
	}

	// Optional message broker for order events
	var publisher coreport.EventPublisher
	if cfg.Events.URL != "" {
		amqpPublisher, err := events.NewAmqpPublisher(events.Config{
			URL:      cfg.Events.URL,
			Exchange: cfg.Events.Exchange,
		}, appLogger, tp)
		if err != nil {
			// Checkout works without the broker, so a dead broker only
			// costs us events
			appLogger.Warn("Message broker unavailable, order events disabled", map[string]any{
				"error": err.Error(),
			})
		} else {
			publisher = amqpPublisher
			defer amqpPublisher.Close()
		}
	}

	// Initialize use cases
	userService := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	cartService := cartUseCase.NewCartUseCase(cartRepo, productRepo, appLogger)
	catalogService := catalogUseCase.NewCatalogUseCase(productRepo, userRepo, orderRepo, tp, appLogger)
	authService := authUseCase.NewAuthUseCase(userRepo, sessionRepo, tp, appLogger, authUseCase.Options{
		SessionTTL:      coreport.Duration(cfg.Auth.SessionTTL),
		StartingBalance: cfg.Auth.StartingBalance,
		BcryptCost:      cfg.Auth.BcryptCost,
	})

	lockTTL := coreport.Duration(time.Duration(cfg.Checkout.LockTimeoutMs) * time.Millisecond)
	checkoutService := checkoutUseCase.NewCheckoutUseCase(
		uow,
		userLockRepo,
		orderRepo,
		publisher,
		tp,
		appLogger,
		lockTTL,
	)

	// Background sweep for locks left behind by crashed checkouts
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go runLockCleanup(sweepCtx, userLockRepo, database.NewMetricsCollector(appLogger, tp), appLogger)

	// Initialize API handlers
	cookieOpts := handler.CookieOptions{
		Name:   cfg.Auth.SessionCookie,
		MaxAge: int(cfg.Auth.SessionTTL.Seconds()),
		Secure: cfg.Environment == config.Production,
	}
	handlers := routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, cookieOpts, appLogger),
		Store:    handler.NewStoreHandler(catalogService, appLogger),
		Cart:     handler.NewCartHandler(cartService, appLogger),
		Checkout: handler.NewCheckoutHandler(checkoutService, appLogger),
		User:     handler.NewUserHandler(userService, appLogger),
		Admin:    handler.NewAdminHandler(catalogService, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, handlers, authService, cfg.Auth.SessionCookie, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	stopSweep()

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// runLockCleanup periodically removes expired checkout locks so a crash
// mid-checkout cannot block a user past the lock TTL
func runLockCleanup(
	ctx context.Context,
	lockRepo *repository.UserLockRepository,
	metrics *database.MetricsCollector,
	appLogger coreport.Logger,
) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	retryConfig := database.DefaultRetryConfig()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := metrics.MeasureQuery(ctx, "cleanup_expired_locks", func() (int64, error) {
				return 0, database.RetryOnTransientError(ctx, retryConfig, func() error {
					return lockRepo.CleanupExpiredLocks(ctx)
				}, appLogger)
			})
			if err != nil {
				appLogger.Warn("Expired lock cleanup failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// parseLogLevel maps the configured level name to a logger level
func parseLogLevel(level string) coreport.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("QK_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or QK_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("QK_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or QK_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("QK_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or QK_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("QK_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or QK_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("QK_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or QK_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate auth configuration
	if cfg.Auth.SessionTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.sessionTTL")
	}

	if cfg.Auth.SessionCookie == "" {
		missingConfigs = append(missingConfigs, "auth.sessionCookie")
	}

	if cfg.Auth.StartingBalance == "" {
		missingConfigs = append(missingConfigs, "auth.startingBalance")
	}

	// Validate checkout configuration
	if cfg.Checkout.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "checkout.lockTimeoutMs")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if strings.ToLower(cfg.Database.SSLMode) != "require" &&
			strings.ToLower(cfg.Database.SSLMode) != "verify-ca" &&
			strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
