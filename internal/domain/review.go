package domain

import (
	"math"
	"time"
)

// Review represents a user-submitted rating and comment tied to one listing.
type Review struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewSummary contains aggregate statistics over submitted reviews for a
// listing. It covers submitted reviews only; merging with the listing's seed
// values happens at display time.
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalCount    int     `json:"total_count"`
}

// Summarize computes the review summary for a sequence of reviews. Returns
// nil when the sequence is empty, in which case callers fall back to the
// listing's seed rating.
func Summarize(reviews []Review) *ReviewSummary {
	if len(reviews) == 0 {
		return nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := float64(sum) / float64(len(reviews))
	return &ReviewSummary{
		AverageRating: math.Round(avg*10) / 10,
		TotalCount:    len(reviews),
	}
}
