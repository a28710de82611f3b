package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/config"
	handler "github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/handler/http"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/provider/mock"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/repository/memory"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/seed"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/service"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/health"
)

// App wires together all dependencies and runs the rental marketplace service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Load the catalog: either the configured JSON file or the built-in set.
	listings := seed.Listings()
	if cfg.ListingsFile != "" {
		loaded, err := seed.LoadFile(cfg.ListingsFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		listings = loaded
	}

	listingStore, err := memory.NewListingStore(listings)
	if err != nil {
		return nil, fmt.Errorf("build listing store: %w", err)
	}
	logger.Info("catalog loaded", slog.Int("listings", len(listings)))

	reviewStore := memory.NewReviewStore()
	sessionStore := memory.NewSessionStore()
	paymentProvider := mock.NewProvider()

	// Build the dependency graph.
	catalogService := service.NewCatalogService(listingStore, reviewStore, logger)
	reviewService := service.NewReviewService(listingStore, reviewStore, logger)
	checkoutService := service.NewCheckoutService(sessionStore, listingStore, paymentProvider, cfg.Currency, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", func(ctx context.Context) error {
		count, err := listingStore.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("catalog is empty")
		}
		return nil
	})

	// HTTP router.
	router := handler.NewRouter(catalogService, reviewService, checkoutService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
