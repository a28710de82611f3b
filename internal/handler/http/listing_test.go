package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
)

// ============================================================================
// GET /api/v1/listings
// ============================================================================

func TestListListings_All(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data       []domain.ListingView `json:"data"`
		TotalCount int                  `json:"total_count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	require.Len(t, envelope.Data, 3)
	assert.Equal(t, 3, envelope.TotalCount)

	// Catalog order is preserved.
	assert.Equal(t, "listing-1", envelope.Data[0].ID)
	assert.Equal(t, "listing-2", envelope.Data[1].ID)
	assert.Equal(t, "listing-3", envelope.Data[2].ID)

	// Seed values surface when no reviews have been submitted.
	assert.Equal(t, 4.8, envelope.Data[0].DisplayRating)
	assert.Equal(t, 127, envelope.Data[0].DisplayReviewCount)
}

func TestListListings_CategoryFilter(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings?categories=Tools,Outdoor", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []domain.ListingView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "listing-2", envelope.Data[0].ID)
	assert.Equal(t, "listing-3", envelope.Data[1].ID)
}

func TestListListings_MinRatingFilter(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings?min_rating=4.75", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []domain.ListingView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "listing-1", envelope.Data[0].ID)
	assert.Equal(t, "listing-2", envelope.Data[1].ID)
}

func TestListListings_CombinedFilters(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings?categories=Electronics,Outdoor&min_rating=4.75", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []domain.ListingView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "listing-1", envelope.Data[0].ID)
}

func TestListListings_InvalidMinRating(t *testing.T) {
	router := setupRouter(t)

	for _, raw := range []string{"abc", "-1", "5.1"} {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/listings?min_rating="+raw, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "min_rating=%s", raw)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	}
}

// ============================================================================
// GET /api/v1/listings/{id}
// ============================================================================

func TestGetListing_Success(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings/listing-2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view domain.ListingView
	decodeData(t, rec, &view)
	assert.Equal(t, "Power Drill Set", view.Name)
	assert.Equal(t, int64(2500), view.PricePerDay)
	assert.Equal(t, 4.9, view.DisplayRating)
}

func TestGetListing_NotFound(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
