package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	providermock "github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/provider/mock"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/repository/memory"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/service"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/health"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:              "listing-1",
			Name:            "Professional DSLR Camera",
			Location:        "San Francisco, CA",
			Category:        "Electronics",
			PricePerDay:     4500,
			SeedRating:      4.8,
			SeedReviewCount: 127,
			Owner:           "Sarah Johnson",
			Verified:        true,
			Delivery:        true,
		},
		{
			ID:              "listing-2",
			Name:            "Power Drill Set",
			Location:        "Austin, TX",
			Category:        "Tools",
			PricePerDay:     2500,
			SeedRating:      4.9,
			SeedReviewCount: 89,
			Owner:           "Michael Chen",
			Verified:        true,
		},
		{
			ID:              "listing-3",
			Name:            "Camping Tent (4-Person)",
			Location:        "Portland, OR",
			Category:        "Outdoor",
			PricePerDay:     3500,
			SeedRating:      4.7,
			SeedReviewCount: 203,
			Owner:           "Emily Rodriguez",
			Verified:        true,
			Delivery:        true,
		},
	}
}

// setupRouter wires the full production router against in-memory stores.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := testLogger()

	listingStore, err := memory.NewListingStore(testListings())
	require.NoError(t, err)
	reviewStore := memory.NewReviewStore()
	sessionStore := memory.NewSessionStore()

	catalogService := service.NewCatalogService(listingStore, reviewStore, logger)
	reviewService := service.NewReviewService(listingStore, reviewStore, logger)
	checkoutService := service.NewCheckoutService(sessionStore, listingStore, providermock.NewProvider(), "USD", logger)

	return NewRouter(catalogService, reviewService, checkoutService, health.NewHandler(), logger)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	err := json.NewDecoder(rec.Body).Decode(&envelope)
	require.NoError(t, err)
	require.NotNil(t, envelope.Data)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
