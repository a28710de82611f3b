package memory

import (
	"context"
	"sync"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	apperrors "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/errors"
)

// ListingStore is an in-memory listing catalog. It is seeded once at
// startup; reads preserve the seed order.
type ListingStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Listing
}

// NewListingStore creates a listing store seeded with the given listings.
// Duplicate ids are rejected.
func NewListingStore(listings []domain.Listing) (*ListingStore, error) {
	s := &ListingStore{
		byID: make(map[string]domain.Listing, len(listings)),
	}
	for _, l := range listings {
		if l.ID == "" {
			return nil, apperrors.InvalidInput("listing id must not be empty")
		}
		if _, exists := s.byID[l.ID]; exists {
			return nil, apperrors.InvalidInput("duplicate listing id: " + l.ID)
		}
		s.byID[l.ID] = l
		s.order = append(s.order, l.ID)
	}
	return s, nil
}

// GetByID retrieves a listing by its id.
func (s *ListingStore) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("listing", id)
	}
	return &l, nil
}

// List returns all listings in their original seed order.
func (s *ListingStore) List(_ context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Listing, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// Count returns the number of listings in the catalog.
func (s *ListingStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}
