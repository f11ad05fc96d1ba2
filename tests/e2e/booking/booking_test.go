//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync/atomic"
	"testing"

	"student-travels/internal/domain/user"
	"student-travels/internal/handler/dto/request"
	resdto "student-travels/internal/handler/dto/response"
	"student-travels/tests/common/authtest"
	"student-travels/tests/common/dbtest"
	"student-travels/tests/common/httptest"
	"student-travels/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper

	advertiserID    uuid.UUID
	advertiserToken string
	studentID       uuid.UUID
	studentToken    string
	categoryID      uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.advertiserID = dbtest.CreateTestUser(t, s.DB, "sunny_trips", string(user.RoleAdvertiser))
	s.advertiserToken = s.jwtHelper.GenerateToken(t, s.advertiserID, user.RoleAdvertiser)
	s.studentID = dbtest.CreateTestUser(t, s.DB, "ana", string(user.RoleStudent))
	s.studentToken = s.jwtHelper.GenerateToken(t, s.studentID, user.RoleStudent)
	s.categoryID = dbtest.CategoryID(t, s.DB, dbtest.DefaultCategory)
}

func (s *bookingSuite) offer(spots int32) uuid.UUID {
	return dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
		AdvertiserID: s.advertiserID,
		CategoryID:   s.categoryID,
		Spots:        spots,
		PriceCents:   49900,
	})
}

func bookingRequest(offerID uuid.UUID) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		OfferID:      offerID,
		ContactPhone: "+33 6 12 34 56 78",
		ContactEmail: "ana@example.com",
	}
}

func (s *bookingSuite) spotsLeft(offerID uuid.UUID) int32 {
	var spots int32
	err := s.DB.QueryRow(s.T().Context(), "SELECT available_spots FROM offers WHERE id = $1", offerID).Scan(&spots)
	require.NoError(s.T(), err)
	return spots
}

func (s *bookingSuite) unread(token string) int64 {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/messages/unread-count", nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	var res resdto.UnreadCountResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return res.Unread
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("book, confirm, complete, review", func() {
		t := s.T()
		offerID := s.offer(3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(offerID), s.studentToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)
		require.Equal(t, int64(49900), created.PricePaidCents)
		require.Equal(t, int32(2), s.spotsLeft(offerID))

		// both parties get a system message
		require.Equal(t, int64(1), s.unread(s.studentToken))
		require.Equal(t, int64(1), s.unread(s.advertiserToken))

		statusURL := fmt.Sprintf("%s/%s/status", bookingsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, statusURL, map[string]string{"status": "confirmed"}, s.advertiserToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, int64(2), s.unread(s.studentToken))

		review := request.CreateReviewRequest{BookingID: created.ID, Rating: 5, Comment: "Loved it"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", review, s.studentToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "confirmed bookings cannot be reviewed yet")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, statusURL, map[string]string{"status": "completed"}, s.advertiserToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var completed resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &completed))
		require.Equal(t, "completed", completed.Status)
		require.Equal(t, int32(2), s.spotsLeft(offerID), "completed bookings keep their spot")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, statusURL, map[string]string{"status": "refunded"}, s.advertiserToken)
		require.Equal(t, http.StatusConflict, w.Code, "statuses outside the lifecycle are invalid transitions")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", review, s.studentToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", review, s.studentToken)
		require.Equal(t, http.StatusConflict, w.Code, "one review per booking")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/offers/"+offerID.String()+"/reviews", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reviews resdto.OfferReviewsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reviews))
		require.Len(t, reviews.Items, 1)
		require.Equal(t, "ana", reviews.Items[0].StudentUsername)
		require.InDelta(t, 5.0, reviews.AverageRating, 0.001)
		require.Equal(t, int64(1), reviews.ReviewCount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, statusURL, map[string]string{"status": "cancelled"}, s.advertiserToken)
		require.Equal(t, http.StatusConflict, w.Code, "completed is terminal")
	})

	s.Run("student cancels and the spot comes back", func() {
		t := s.T()
		offerID := s.offer(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(offerID), s.studentToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, int32(0), s.spotsLeft(offerID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/offers/"+offerID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var detail resdto.OfferDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.False(t, detail.IsAvailable, "sold out")

		cancelURL := fmt.Sprintf("%s/%s/cancel", bookingsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, s.studentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, int32(1), s.spotsLeft(offerID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, s.studentToken)
		require.Equal(t, http.StatusConflict, w.Code, "cancelled is terminal")
		require.Equal(t, int32(1), s.spotsLeft(offerID), "spot released only once")
	})
}

func (s *bookingSuite) TestCreateRejections() {
	s.Run("duplicate booking", func() {
		t := s.T()
		offerID := s.offer(5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(offerID), s.studentToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(offerID), s.studentToken)
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, int32(4), s.spotsLeft(offerID))
	})

	s.Run("advertisers cannot book", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(s.offer(5)), s.advertiserToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})

	s.Run("pending offer is not bookable", func() {
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			AdvertiserID: s.advertiserID,
			CategoryID:   s.categoryID,
			Spots:        5,
			Status:       "pending",
		})
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(offerID), s.studentToken)
		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("unknown offer", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(uuid.New()), s.studentToken)
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("other advertiser cannot confirm", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(s.offer(5)), s.studentToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var created resdto.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		otherID := dbtest.CreateTestUser(t, s.DB, "rival_tours", string(user.RoleAdvertiser))
		otherToken := s.jwtHelper.GenerateToken(t, otherID, user.RoleAdvertiser)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/status", bookingsURL, created.ID),
			map[string]string{"status": "confirmed"}, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Concurrent students racing for the last spot: exactly one wins and the
// counter never goes negative.
func (s *bookingSuite) TestLastSpotRace() {
	s.Run("one winner", func() {
		t := s.T()
		offerID := s.offer(1)

		const contenders = 8
		tokens := make([]string, contenders)
		for i := range tokens {
			id := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("racer_%d", i), string(user.RoleStudent))
			tokens[i] = s.jwtHelper.GenerateToken(t, id, user.RoleStudent)
		}
		payload, err := json.Marshal(bookingRequest(offerID))
		require.NoError(t, err)

		var created, conflicts atomic.Int32
		var g errgroup.Group
		for _, token := range tokens {
			g.Go(func() error {
				req := nethttptest.NewRequest(http.MethodPost, bookingsURL, bytes.NewReader(payload))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusConflict:
					conflicts.Add(1)
				default:
					return fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(1), created.Load())
		require.Equal(t, int32(contenders-1), conflicts.Load())
		require.Equal(t, int32(0), s.spotsLeft(offerID))

		var bookings int
		err = s.DB.QueryRow(t.Context(), "SELECT count(*) FROM bookings WHERE offer_id = $1", offerID).Scan(&bookings)
		require.NoError(t, err)
		require.Equal(t, 1, bookings)
	})
}
