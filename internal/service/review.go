package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/repository"
	apperrors "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/errors"
)

// SubmitReviewInput holds the parameters for submitting a review.
type SubmitReviewInput struct {
	ListingID string
	Rating    int
	Comment   string
	Author    string
}

// ReviewListResult contains a listing's reviews and their aggregate summary.
// Summary is nil when no reviews have been submitted yet.
type ReviewListResult struct {
	Reviews []domain.Review       `json:"reviews"`
	Summary *domain.ReviewSummary `json:"summary"`
}

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	listings repository.ListingRepository
	reviews  repository.ReviewRepository
	logger   *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(listings repository.ListingRepository, reviews repository.ReviewRepository, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		listings: listings,
		reviews:  reviews,
		logger:   logger,
	}
}

// SubmitReview appends a new review to the listing's sequence.
func (s *ReviewService) SubmitReview(ctx context.Context, input *SubmitReviewInput) (*domain.Review, error) {
	if input.ListingID == "" {
		return nil, apperrors.InvalidInput("listing id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if input.Comment == "" {
		return nil, apperrors.InvalidInput("comment is required")
	}
	if input.Author == "" {
		return nil, apperrors.InvalidInput("author name is required")
	}

	if _, err := s.listings.GetByID(ctx, input.ListingID); err != nil {
		return nil, fmt.Errorf("verify listing: %w", err)
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ListingID: input.ListingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Author:    input.Author,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviews.Append(ctx, review); err != nil {
		return nil, fmt.Errorf("append review: %w", err)
	}

	s.logger.InfoContext(ctx, "review submitted",
		slog.String("review_id", review.ID),
		slog.String("listing_id", review.ListingID),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

// ListReviews returns the listing's reviews in insertion order together with
// their aggregate summary.
func (s *ReviewService) ListReviews(ctx context.Context, listingID string) (*ReviewListResult, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("verify listing: %w", err)
	}

	reviews, err := s.reviews.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	summary, err := s.reviews.Summary(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("review summary: %w", err)
	}

	return &ReviewListResult{
		Reviews: reviews,
		Summary: summary,
	}, nil
}
