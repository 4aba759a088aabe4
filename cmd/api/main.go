// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/internal/core/ports"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/internal/handlers"
	"github.com/aileenong/kprimefood/internal/handlers/middleware"
	"github.com/aileenong/kprimefood/internal/pkg/config"
	"github.com/aileenong/kprimefood/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting kprime food inventory system",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations if enabled
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.asynqClient != nil {
			if err := deps.asynqClient.Close(); err != nil {
				slogger.Error("failed to close Asynq client", slog.String("error", err.Error()))
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	stockHandler     *handlers.StockHandler
	saleHandler      *handlers.SaleHandler
	pricingHandler   *handlers.PricingHandler
	customerHandler  *handlers.CustomerHandler
	auditHandler     *handlers.AuditHandler
	dashboardHandler *handlers.DashboardHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	catalogRepo := db.NewCatalogRepository(database, logger)
	pricingRepo := db.NewPricingRepository(database, logger)
	saleRepo := db.NewSaleRepository(database, logger)
	auditRepo := db.NewAuditRepository(database, logger)
	customerRepo := db.NewCustomerRepository(database, logger)
	orderNumberRepo := db.NewOrderNumberRepository(database, logger)

	itemLock := redis_a.NewItemLock(redisClient, logger)

	// Services
	catalogService := services.NewCatalogService(catalogRepo, deps.redisCache, logger)
	pricingService := services.NewPricingService(pricingRepo, logger)
	saleService := services.NewSaleService(catalogRepo, pricingRepo, saleRepo, itemLock, deps.redisCache, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	statementService := services.NewStatementService(customerRepo, saleRepo, orderNumberRepo, logger)

	// Handlers
	deps.stockHandler = handlers.NewStockHandler(catalogService, logger)
	deps.saleHandler = handlers.NewSaleHandler(saleService, logger)
	deps.pricingHandler = handlers.NewPricingHandler(pricingService, logger)
	deps.customerHandler = handlers.NewCustomerHandler(customerService, statementService, logger)
	deps.auditHandler = handlers.NewAuditHandler(auditRepo, logger)
	deps.dashboardHandler = handlers.NewDashboardHandler(database, deps.redisCache, cfg.Inventory.DashboardCacheTTL, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(slogger)(handler)
		handler = middleware.Recovery(slogger.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Stock catalog endpoints
	mux.HandleFunc("POST "+apiV1+"/stock", deps.stockHandler.UpsertStock)
	mux.HandleFunc("GET "+apiV1+"/stock", deps.stockHandler.ListStock)
	mux.HandleFunc("GET "+apiV1+"/stock/{itemName}/rows", deps.stockHandler.GetRows)
	mux.HandleFunc("GET "+apiV1+"/stock/{itemName}/on-hand", deps.stockHandler.GetOnHand)
	mux.HandleFunc("DELETE "+apiV1+"/stock/rows/{id}", deps.stockHandler.DeleteRow)

	// Sale endpoints
	mux.HandleFunc("POST "+apiV1+"/sales", deps.saleHandler.RecordSale)
	mux.HandleFunc("GET "+apiV1+"/sales", deps.saleHandler.ListSales)
	mux.HandleFunc("GET "+apiV1+"/sales/{id}", deps.saleHandler.GetSale)

	// Pricing endpoints
	mux.HandleFunc("GET "+apiV1+"/pricing/{itemID}/resolve", deps.pricingHandler.ResolvePrice)
	mux.HandleFunc("GET "+apiV1+"/pricing/{itemID}/tiers", deps.pricingHandler.ListTiers)
	mux.HandleFunc("PUT "+apiV1+"/pricing/{itemID}/tiers", deps.pricingHandler.UpsertTier)
	mux.HandleFunc("DELETE "+apiV1+"/pricing/tiers/{id}", deps.pricingHandler.DeleteTier)
	mux.HandleFunc("GET "+apiV1+"/pricing/{itemID}/history", deps.pricingHandler.PriceHistory)

	// Customer and statement endpoints
	mux.HandleFunc("POST "+apiV1+"/customers", deps.customerHandler.CreateCustomer)
	mux.HandleFunc("GET "+apiV1+"/customers", deps.customerHandler.ListCustomers)
	mux.HandleFunc("GET "+apiV1+"/customers/{id}", deps.customerHandler.GetCustomer)
	mux.HandleFunc("PUT "+apiV1+"/customers/{id}", deps.customerHandler.UpdateCustomer)
	mux.HandleFunc("DELETE "+apiV1+"/customers/{id}", deps.customerHandler.DeleteCustomer)
	mux.HandleFunc("GET "+apiV1+"/customers/{id}/statement", deps.customerHandler.GetStatement)
	mux.HandleFunc("POST "+apiV1+"/purchase-orders/number", deps.customerHandler.NextOrderNumber)

	// Ledger endpoint
	mux.HandleFunc("GET "+apiV1+"/audit", deps.auditHandler.ListAudit)

	// Dashboard endpoints
	mux.HandleFunc("GET "+apiV1+"/dashboard", deps.dashboardHandler.GetDashboard)
	mux.HandleFunc("GET "+apiV1+"/dashboard/low-stock", deps.dashboardHandler.GetLowStock)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
