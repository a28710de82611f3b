package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	apperrors "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/errors"
)

// --- Mock Repositories ---

type mockListingRepo struct {
	mock.Mock
}

func (m *mockListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *mockListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *mockListingRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Append(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) ListByListing(ctx context.Context, listingID string) ([]domain.Review, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Summary(ctx context.Context, listingID string) (*domain.ReviewSummary, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewSummary), args.Error(1)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func catalogListings() []domain.Listing {
	return []domain.Listing{
		{ID: "1", Name: "Professional DSLR Camera", Category: "Electronics", PricePerDay: 4500, SeedRating: 4.8, SeedReviewCount: 127},
		{ID: "2", Name: "Power Drill Set", Category: "Tools", PricePerDay: 2500, SeedRating: 4.9, SeedReviewCount: 89},
		{ID: "3", Name: "Camping Tent - 4 Person", Category: "Outdoor", PricePerDay: 3500, SeedRating: 4.7, SeedReviewCount: 203},
	}
}

func expectNoReviews(reviews *mockReviewRepo, ids ...string) {
	for _, id := range ids {
		reviews.On("Summary", mock.Anything, id).Return(nil, nil)
	}
}

// --- Tests ---

func TestListListings_NoFilterReturnsAllInOrder(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	listings.On("List", ctx).Return(catalogListings(), nil)
	expectNoReviews(reviews, "1", "2", "3")

	views, err := svc.ListListings(ctx, ListingFilter{})

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "1", views[0].ID)
	assert.Equal(t, "2", views[1].ID)
	assert.Equal(t, "3", views[2].ID)
	// Seed fallback when no reviews have been submitted.
	assert.Equal(t, 4.8, views[0].DisplayRating)
	assert.Equal(t, 127, views[0].DisplayReviewCount)

	listings.AssertExpectations(t)
	reviews.AssertExpectations(t)
}

func TestListListings_CategoryFilter(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	listings.On("List", ctx).Return(catalogListings(), nil)
	expectNoReviews(reviews, "1", "3")

	views, err := svc.ListListings(ctx, ListingFilter{Categories: []string{"Electronics", "Outdoor"}})

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Electronics", views[0].Category)
	assert.Equal(t, "Outdoor", views[1].Category)
}

func TestListListings_MinRatingUsesDisplayRating(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	listings.On("List", ctx).Return(catalogListings(), nil)
	// Listing 1 has submitted reviews pulling its rating below the seed value.
	reviews.On("Summary", mock.Anything, "1").Return(&domain.ReviewSummary{AverageRating: 2.0, TotalCount: 3}, nil)
	reviews.On("Summary", mock.Anything, "2").Return(nil, nil)
	reviews.On("Summary", mock.Anything, "3").Return(nil, nil)

	views, err := svc.ListListings(ctx, ListingFilter{MinRating: 4.8})

	require.NoError(t, err)
	// Listing 1 drops (2.0 < 4.8), listing 2 passes (4.9 seed), listing 3 drops (4.7 seed).
	require.Len(t, views, 1)
	assert.Equal(t, "2", views[0].ID)
}

func TestListListings_Idempotent(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	listings.On("List", ctx).Return(catalogListings(), nil)
	expectNoReviews(reviews, "2")

	filter := ListingFilter{Categories: []string{"Tools"}}

	first, err := svc.ListListings(ctx, filter)
	require.NoError(t, err)
	second, err := svc.ListListings(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListListings_MergedDisplayValues(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	listings.On("List", ctx).Return(catalogListings(), nil)
	reviews.On("Summary", mock.Anything, "1").Return(nil, nil)
	reviews.On("Summary", mock.Anything, "2").Return(&domain.ReviewSummary{AverageRating: 4.5, TotalCount: 2}, nil)
	reviews.On("Summary", mock.Anything, "3").Return(nil, nil)

	views, err := svc.ListListings(ctx, ListingFilter{})

	require.NoError(t, err)
	require.Len(t, views, 3)
	// Submitted average replaces the seed rating; counts are additive.
	assert.Equal(t, 4.5, views[1].DisplayRating)
	assert.Equal(t, 91, views[1].DisplayReviewCount)
}

func TestGetListing(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	l := catalogListings()[0]
	listings.On("GetByID", ctx, "1").Return(&l, nil)
	reviews.On("Summary", mock.Anything, "1").Return(nil, nil)

	view, err := svc.GetListing(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, "Professional DSLR Camera", view.Name)
	assert.Equal(t, 4.8, view.DisplayRating)
}

func TestGetListing_NotFound(t *testing.T) {
	listings := new(mockListingRepo)
	reviews := new(mockReviewRepo)
	svc := NewCatalogService(listings, reviews, newTestLogger())
	ctx := context.Background()

	listings.On("GetByID", ctx, "missing").Return(nil, apperrors.NotFound("listing", "missing"))

	_, err := svc.GetListing(ctx, "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
