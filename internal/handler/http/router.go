package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/service"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/health"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/middleware"
)

// NewRouter creates a chi router with all marketplace routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	reviewService *service.ReviewService,
	checkoutService *service.CheckoutService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS)
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("rental-marketplace"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Catalog API endpoints
	listingHandler := NewListingHandler(catalogService, logger)

	r.Route("/api/v1/listings", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", listingHandler.ListListings)
		r.Get("/{id}", listingHandler.GetListing)
	})

	// Review API endpoints (nested under listings)
	reviewHandler := NewReviewHandler(reviewService, logger)

	r.Route("/api/v1/listings/{id}/reviews", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", reviewHandler.ListReviews)
		r.Post("/", reviewHandler.SubmitReview)
	})

	// Checkout session API endpoints
	checkoutHandler := NewCheckoutHandler(checkoutService, logger)

	r.Route("/api/v1/sessions", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", checkoutHandler.StartSession)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", checkoutHandler.GetSession)
			r.Post("/select", checkoutHandler.SelectListing)
			r.Put("/dates", checkoutHandler.SetDates)
			r.Post("/reviews/open", checkoutHandler.OpenReviews)
			r.Post("/reviews/close", checkoutHandler.CloseReviews)
			r.Post("/payment", checkoutHandler.OpenPayment)
			r.Post("/payment/submit", checkoutHandler.SubmitPayment)
			r.Get("/receipt", checkoutHandler.GetReceipt)
			r.Get("/receipt/download", checkoutHandler.DownloadReceipt)
			r.Post("/close", checkoutHandler.CloseSession)
		})
	})

	return r
}
