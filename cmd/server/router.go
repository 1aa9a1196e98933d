package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/profel/inventory-api/internal/api"
	apiMiddleware "github.com/profel/inventory-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	validator := api.NewValidator()

	authHandler := api.NewAuthHandler(
		app.clientStore,
		app.passwordVerifier,
		app.tokenService,
		validator,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)
	currencyHandler := api.NewCurrencyHandler(app.currencyClient, app.logger)

	resources := map[string]*api.ResourceHandler{
		"clients":            api.NewResourceHandler(api.NewClientResource(app.clientService, validator), app.logger),
		"products":           api.NewResourceHandler(api.NewProductResource(app.productService, validator), app.logger),
		"warehouses":         api.NewResourceHandler(api.NewWarehouseResource(app.warehouseService, validator), app.logger),
		"product-warehouses": api.NewResourceHandler(api.NewStockResource(app.stockService, validator), app.logger),
		"orders":             api.NewResourceHandler(api.NewOrderResource(app.orderService, validator), app.logger),
	}

	r.Route("/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/currency", currencyHandler.HandleRates)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/logout", authHandler.HandleLogout)

			for path, handler := range resources {
				r.Route("/"+path, func(r chi.Router) {
					r.Get("/", handler.HandleList)
					r.Post("/", handler.HandleCreate)
					r.Get("/{id}", handler.HandleShow)
					r.Get("/{id}/edit", handler.HandleEdit)
					r.Put("/{id}", handler.HandleUpdate)
					r.Delete("/{id}", handler.HandleDelete)
				})
			}
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
