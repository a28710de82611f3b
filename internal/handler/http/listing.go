package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/service"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/httputil"
)

// ListingHandler handles HTTP requests for catalog endpoints.
type ListingHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewListingHandler creates a new catalog HTTP handler.
func NewListingHandler(svc *service.CatalogService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		service: svc,
		logger:  logger,
	}
}

// ListListings handles GET /api/v1/listings
//
// Query parameters: categories (comma-separated, empty means all) and
// min_rating (numeric, default 0).
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	filter := service.ListingFilter{}

	if v := r.URL.Query().Get("categories"); v != "" {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filter.Categories = append(filter.Categories, c)
			}
		}
	}

	if v := r.URL.Query().Get("min_rating"); v != "" {
		minRating, err := strconv.ParseFloat(v, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "min_rating must be a number between 0 and 5"},
			})
			return
		}
		filter.MinRating = minRating
	}

	views, err := h.service.ListListings(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"data":        views,
		"total_count": len(views),
	})
}

// GetListing handles GET /api/v1/listings/{id}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "listing id is required"},
		})
		return
	}

	view, err := h.service.GetListing(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
