package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/repository"
)

// ListingFilter narrows the catalog. An empty category set means no category
// filter; a MinRating of 0 lets every listing pass.
type ListingFilter struct {
	Categories []string
	MinRating  float64
}

// CatalogService implements listing browsing: review-enriched display values
// and the category/rating filter. Results are derived from the live review
// state on every call, never cached.
type CatalogService struct {
	listings repository.ListingRepository
	reviews  repository.ReviewRepository
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(listings repository.ListingRepository, reviews repository.ReviewRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		listings: listings,
		reviews:  reviews,
		logger:   logger,
	}
}

// ListListings returns the filtered catalog in seed order. A listing passes
// when its category is in the selected set (or the set is empty) and its
// display rating is at least the minimum. The display rating is the
// submitted-review average when any submitted reviews exist, otherwise the
// seed rating; the comparison is numeric.
func (s *CatalogService) ListListings(ctx context.Context, filter ListingFilter) ([]domain.ListingView, error) {
	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	categories := make(map[string]struct{}, len(filter.Categories))
	for _, c := range filter.Categories {
		categories[c] = struct{}{}
	}

	views := make([]domain.ListingView, 0, len(listings))
	for _, l := range listings {
		if len(categories) > 0 {
			if _, ok := categories[l.Category]; !ok {
				continue
			}
		}

		view, err := s.enrich(ctx, l)
		if err != nil {
			return nil, err
		}
		if view.DisplayRating < filter.MinRating {
			continue
		}
		views = append(views, *view)
	}

	return views, nil
}

// GetListing returns a single review-enriched listing.
func (s *CatalogService) GetListing(ctx context.Context, id string) (*domain.ListingView, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return s.enrich(ctx, *l)
}

// enrich merges the listing's seed values with its submitted-review
// aggregate.
func (s *CatalogService) enrich(ctx context.Context, l domain.Listing) (*domain.ListingView, error) {
	summary, err := s.reviews.Summary(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("review summary for listing %s: %w", l.ID, err)
	}

	view := &domain.ListingView{
		Listing:            l,
		DisplayRating:      l.SeedRating,
		DisplayReviewCount: l.SeedReviewCount,
	}
	if summary != nil {
		view.DisplayRating = summary.AverageRating
		view.DisplayReviewCount = l.SeedReviewCount + summary.TotalCount
	}
	return view, nil
}
