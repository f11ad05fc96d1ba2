//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"student-travels/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	now := time.Now()
	bookingID := uuid.New()

	cases := []struct {
		name    string
		rating  int
		comment string
		errIs   error
	}{
		{name: "lowest rating", rating: 1},
		{name: "highest rating", rating: 5, comment: "Loved it"},
		{name: "blank comment allowed", rating: 3, comment: "   "},
		{name: "rating zero", rating: 0, errIs: review.ErrInvalidRating},
		{name: "rating six", rating: 6, errIs: review.ErrInvalidRating},
		{name: "negative rating", rating: -1, errIs: review.ErrInvalidRating},
		{name: "comment at limit", rating: 4, comment: strings.Repeat("é", review.MaxCommentLength)},
		{name: "comment too long", rating: 4, comment: strings.Repeat("a", review.MaxCommentLength+1), errIs: review.ErrCommentTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := review.NewReview(bookingID, c.rating, c.comment, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, r.BookingID())
			assert.Equal(t, c.rating, r.Rating().Value())
			assert.Equal(t, strings.TrimSpace(c.comment), r.Comment().String())
		})
	}
}
