package domain

// Listing represents a rentable item shown in the catalog. Listings are
// loaded once at startup and never mutated afterwards.
type Listing struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Category        string  `json:"category"`
	PricePerDay     int64   `json:"price_per_day"`
	SeedRating      float64 `json:"seed_rating"`
	SeedReviewCount int     `json:"seed_review_count"`
	Owner           string  `json:"owner"`
	Verified        bool    `json:"verified"`
	Delivery        bool    `json:"delivery"`
	ImageURL        string  `json:"image_url"`
}

// ListingView is a listing enriched with display values derived from
// submitted reviews. DisplayRating falls back to the seed rating when no
// reviews have been submitted; DisplayReviewCount is the seed count plus the
// number of submitted reviews.
type ListingView struct {
	Listing
	DisplayRating      float64 `json:"display_rating"`
	DisplayReviewCount int     `json:"display_review_count"`
}
