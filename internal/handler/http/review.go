package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/service"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/httputil"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/validator"
)

// ReviewHandler handles HTTP requests for listing reviews.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
	Author  string `json:"author" validate:"required,max=100"`
}

// SubmitReview handles POST /api/v1/listings/{id}/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body"},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &service.SubmitReviewInput{
		ListingID: listingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Author:    req.Author,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

// ListReviews handles GET /api/v1/listings/{id}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	result, err := h.service.ListReviews(r.Context(), listingID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}
