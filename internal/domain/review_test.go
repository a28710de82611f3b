package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewsWithRatings(ratings ...int) []Review {
	reviews := make([]Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = Review{Rating: r}
	}
	return reviews
}

func TestSummarize_Empty(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]Review{}))
}

func TestSummarize_SingleReview(t *testing.T) {
	s := Summarize(reviewsWithRatings(5))
	require.NotNil(t, s)
	assert.Equal(t, 5.0, s.AverageRating)
	assert.Equal(t, 1, s.TotalCount)
}

func TestSummarize_RoundsToOneDecimal(t *testing.T) {
	// (5+4+4)/3 = 4.333... -> 4.3
	s := Summarize(reviewsWithRatings(5, 4, 4))
	require.NotNil(t, s)
	assert.Equal(t, 4.3, s.AverageRating)
	assert.Equal(t, 3, s.TotalCount)

	// (5+4)/2 = 4.5 stays exact
	s = Summarize(reviewsWithRatings(5, 4))
	require.NotNil(t, s)
	assert.Equal(t, 4.5, s.AverageRating)
}

func TestSummarize_RoundsHalfUp(t *testing.T) {
	// (1+2+2)/3 = 1.666... -> 1.7
	s := Summarize(reviewsWithRatings(1, 2, 2))
	require.NotNil(t, s)
	assert.Equal(t, 1.7, s.AverageRating)
}
