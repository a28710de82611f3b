package memory

import (
	"context"
	"sync"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	apperrors "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/errors"
)

// ReviewStore holds submitted reviews per listing for the life of the
// process. Reviews are append-only and kept in insertion order.
type ReviewStore struct {
	mu        sync.RWMutex
	byListing map[string][]domain.Review
}

// NewReviewStore creates an empty review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		byListing: make(map[string][]domain.Review),
	}
}

// Append adds a review to its listing's sequence.
func (s *ReviewStore) Append(_ context.Context, review *domain.Review) error {
	if review.ListingID == "" {
		return apperrors.InvalidInput("review listing id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byListing[review.ListingID] = append(s.byListing[review.ListingID], *review)
	return nil
}

// ListByListing returns the listing's reviews in insertion order. An unknown
// listing yields an empty slice, not an error; the catalog owns existence.
func (s *ReviewStore) ListByListing(_ context.Context, listingID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := s.byListing[listingID]
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out, nil
}

// Summary returns the aggregate over submitted reviews for the listing, or
// nil when none have been submitted.
func (s *ReviewStore) Summary(_ context.Context, listingID string) (*domain.ReviewSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Summarize(s.byListing[listingID]), nil
}
