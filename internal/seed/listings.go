package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
)

// Listings returns the built-in marketplace catalog.
func Listings() []domain.Listing {
	return []domain.Listing{
		{
			ID:              "1",
			Name:            "Professional DSLR Camera",
			Description:     "This professional dslr camera is available for rent. Perfect for your next project or adventure. Well-maintained and ready to use.",
			Location:        "San Francisco, CA",
			Category:        "Electronics",
			PricePerDay:     4500,
			SeedRating:      4.8,
			SeedReviewCount: 127,
			Owner:           "Sarah Johnson",
			Verified:        true,
			Delivery:        true,
			ImageURL:        "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=800&q=80",
		},
		{
			ID:              "2",
			Name:            "Power Drill Set",
			Description:     "Complete power drill set with multiple attachments and carrying case. Ideal for home improvement projects and construction work.",
			Location:        "Austin, TX",
			Category:        "Tools",
			PricePerDay:     2500,
			SeedRating:      4.9,
			SeedReviewCount: 89,
			Owner:           "Michael Chen",
			Verified:        true,
			Delivery:        false,
			ImageURL:        "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=800&q=80",
		},
		{
			ID:              "3",
			Name:            "Camping Tent - 4 Person",
			Description:     "Spacious 4-person camping tent with rainfly and storage pockets. Perfect for weekend camping trips and outdoor adventures.",
			Location:        "Portland, OR",
			Category:        "Outdoor",
			PricePerDay:     3500,
			SeedRating:      4.7,
			SeedReviewCount: 203,
			Owner:           "Emily Rodriguez",
			Verified:        true,
			Delivery:        true,
			ImageURL:        "https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?w=800&q=80",
		},
	}
}

// LoadFile reads a catalog from a JSON file containing an array of listings.
func LoadFile(path string) ([]domain.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings file: %w", err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("parse listings file %s: %w", path, err)
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("listings file %s contains no listings", path)
	}

	for i, l := range listings {
		if l.ID == "" {
			return nil, fmt.Errorf("listing at index %d has no id", i)
		}
		if l.PricePerDay <= 0 {
			return nil, fmt.Errorf("listing %s has non-positive price", l.ID)
		}
	}

	return listings, nil
}
