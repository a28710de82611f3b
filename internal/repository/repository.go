package repository

import (
	"context"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
)

// ListingRepository defines read access to the listing catalog. The catalog
// is seeded once at startup and immutable afterwards.
type ListingRepository interface {
	// GetByID retrieves a listing by its id.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// List returns all listings in their original seed order.
	List(ctx context.Context) ([]domain.Listing, error)

	// Count returns the number of listings in the catalog.
	Count(ctx context.Context) (int, error)
}

// ReviewRepository defines the interface for the in-memory review store.
// Reviews live for the duration of the process and are never deleted.
type ReviewRepository interface {
	// Append adds a review to its listing's sequence.
	Append(ctx context.Context, review *domain.Review) error

	// ListByListing returns the listing's reviews in insertion order.
	ListByListing(ctx context.Context, listingID string) ([]domain.Review, error)

	// Summary returns the aggregate over submitted reviews for the listing,
	// or nil when no reviews have been submitted.
	Summary(ctx context.Context, listingID string) (*domain.ReviewSummary, error)
}

// SessionRepository defines the interface for checkout session storage.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *domain.CheckoutSession) error

	// Get retrieves a session by its id.
	Get(ctx context.Context, id string) (*domain.CheckoutSession, error)

	// Save overwrites an existing session.
	Save(ctx context.Context, session *domain.CheckoutSession) error
}
