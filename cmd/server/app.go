package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/profel/inventory-api/internal/config"
	"github.com/profel/inventory-api/internal/platform/currency"
	"github.com/profel/inventory-api/internal/platform/postgres"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/service/auth"
	"github.com/profel/inventory-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	clientStore    store.ClientStore
	productStore   store.ProductStore
	warehouseStore store.WarehouseStore
	stockStore     store.StockStore
	orderStore     store.OrderStore
	tokenStore     store.TokenStore

	// Services
	tokenService     auth.TokenService
	passwordVerifier *auth.BcryptVerifier
	clientService    *service.ClientService
	productService   *service.ProductService
	warehouseService *service.WarehouseService
	stockService     *service.StockService
	orderService     *service.OrderService

	// Currency proxy
	currencyCache  *currency.RedisCache
	currencyClient *currency.Client
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Stores
	app.clientStore = postgres.NewPostgresClientStore(db, logger)
	app.productStore = postgres.NewPostgresProductStore(db, logger)
	app.warehouseStore = postgres.NewPostgresWarehouseStore(db, logger)
	app.stockStore = postgres.NewPostgresStockStore(db, logger)
	app.orderStore = postgres.NewPostgresOrderStore(db, logger)
	app.tokenStore = postgres.NewPostgresTokenStore(db, logger)

	// Token service with the database-backed revocation registry
	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth, app.tokenStore)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	// Entity services
	app.clientService = service.NewClientService(app.clientStore, app.passwordVerifier, logger)
	app.productService = service.NewProductService(app.productStore, logger)
	app.warehouseService = service.NewWarehouseService(app.warehouseStore, logger)
	app.stockService = service.NewStockService(app.stockStore, app.productStore, app.warehouseStore, logger)
	app.orderService = service.NewOrderService(app.orderStore, app.productStore, app.warehouseStore, logger)

	// Currency proxy, cached when redis is configured
	var cache currency.Cache
	if cfg.Redis.Addr != "" {
		app.currencyCache = currency.NewRedisCache(cfg.Redis)
		if err := app.currencyCache.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable, currency proxy runs uncached", "error", err)
			_ = app.currencyCache.Close()
			app.currencyCache = nil
		} else {
			cache = app.currencyCache
			logger.Info("Currency cache connected", "addr", cfg.Redis.Addr)
		}
	}
	app.currencyClient = currency.NewClient(cfg.Currency, cache, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.currencyCache != nil {
		if err := app.currencyCache.Close(); err != nil {
			app.logger.Error("Error closing currency cache", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
