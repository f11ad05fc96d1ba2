//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/offer"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/ptr"
	"student-travels/internal/usecase/queries"
	"student-travels/internal/usecase/shared"
	"student-travels/tests/common/builder"
	queriesmock "student-travels/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	offers     *queriesmock.MockOfferReadStore
	bookings   *queriesmock.MockBookingReadStore
	favourites *queriesmock.MockFavouriteReadStore
	q          queries.OfferQueries
}

func (s *OfferQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.offers = queriesmock.NewMockOfferReadStore(s.ctrl)
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.favourites = queriesmock.NewMockFavouriteReadStore(s.ctrl)
	s.q = queries.NewOfferQueries(s.offers, s.bookings, s.favourites, clock.NewMockClock(time.Now()))
}

func (s *OfferQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOfferQueriesSuite(t *testing.T) {
	suite.Run(t, new(OfferQueriesTestSuite))
}

func (s *OfferQueriesTestSuite) TestGetOffer() {
	s.Run("anonymous sees an approved offer", func() {
		detail := builder.NewOfferBuilder().AsApproved().BuildDetail()
		detail.IsAvailable = false
		s.offers.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)

		got, err := s.q.GetOffer(context.Background(), authz.Anonymous(), detail.ID)

		s.Require().NoError(err)
		s.True(got.IsAvailable)
		s.False(got.IsFavourite)
		s.Nil(got.MyBookingID)
	})

	s.Run("student sees favourite and booking markers", func() {
		detail := builder.NewOfferBuilder().AsApproved().BuildDetail()
		student := authz.NewActor(uuid.New(), user.RoleStudent)
		bookingID := uuid.New()

		s.offers.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)
		s.favourites.EXPECT().Exists(gomock.Any(), student.ID, detail.ID).Return(true, nil).Times(1)
		s.bookings.EXPECT().StudentBookingForOffer(gomock.Any(), student.ID, detail.ID).Return(&bookingID, nil).Times(1)

		got, err := s.q.GetOffer(context.Background(), student, detail.ID)

		s.Require().NoError(err)
		s.True(got.IsFavourite)
		s.Equal(&bookingID, got.MyBookingID)
	})

	s.Run("pending offer is hidden from others", func() {
		detail := builder.NewOfferBuilder().BuildDetail()
		for _, actor := range []authz.Actor{
			authz.Anonymous(),
			authz.NewActor(uuid.New(), user.RoleStudent),
			authz.NewActor(uuid.New(), user.RoleAdvertiser),
		} {
			s.offers.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)

			_, err := s.q.GetOffer(context.Background(), actor, detail.ID)

			s.ErrorIs(err, shared.ErrOfferNotFound)
		}
	})

	s.Run("pending offer is visible to its owner and staff", func() {
		detail := builder.NewOfferBuilder().BuildDetail()
		for _, actor := range []authz.Actor{
			authz.NewActor(detail.AdvertiserID, user.RoleAdvertiser),
			authz.NewActor(uuid.New(), user.RoleModerator),
			authz.NewActor(uuid.New(), user.RoleAdmin),
		} {
			s.offers.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)

			got, err := s.q.GetOffer(context.Background(), actor, detail.ID)

			s.Require().NoError(err)
			s.False(got.IsAvailable)
		}
	})
}

func (s *OfferQueriesTestSuite) TestSearch() {
	s.Run("fetches one extra row to detect the next page", func() {
		rows := make([]*queries.OfferListItem, 3)
		for i := range rows {
			rows[i] = builder.NewOfferBuilder().AsApproved().BuildListItem()
		}
		filters := queries.OfferSearchFilters{Query: "lisbon"}
		s.offers.EXPECT().Search(gomock.Any(), filters, nil, int32(3)).Return(rows, nil).Times(1)

		items, next, err := s.q.Search(context.Background(), filters, nil, 2)

		s.Require().NoError(err)
		s.Len(items, 2)
		s.NotNil(next)
		s.True(items[0].IsAvailable)
	})

	s.Run("sold out offers are not available", func() {
		row := builder.NewOfferBuilder().AsApproved().With(func(b *builder.OfferBuilder) { b.AvailableSpots = 0 }).BuildListItem()
		s.offers.EXPECT().Search(gomock.Any(), gomock.Any(), nil, int32(queries.DefaultListLimit+1)).
			Return([]*queries.OfferListItem{row}, nil).Times(1)

		items, next, err := s.q.Search(context.Background(), queries.OfferSearchFilters{}, nil, 0)

		s.Require().NoError(err)
		s.Nil(next)
		s.False(items[0].IsAvailable)
	})

	s.Run("error: inverted price range", func() {
		_, _, err := s.q.Search(context.Background(), queries.OfferSearchFilters{
			MinPriceCents: ptr.Of(int64(500)),
			MaxPriceCents: ptr.Of(int64(100)),
		}, nil, 10)
		s.ErrorIs(err, queries.ErrInvalidPriceRange)
	})

	s.Run("error: garbage cursor", func() {
		_, _, err := s.q.Search(context.Background(), queries.OfferSearchFilters{}, &queries.Cursor{After: "garbage"}, 10)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})
}

func (s *OfferQueriesTestSuite) TestFeatured() {
	s.offers.EXPECT().Featured(gomock.Any(), int32(queries.MaxFeaturedOffers)).
		Return([]*queries.OfferListItem{builder.NewOfferBuilder().AsApproved().BuildListItem()}, nil).Times(1)

	items, err := s.q.Featured(context.Background())

	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *OfferQueriesTestSuite) TestMyOffers() {
	s.Run("advertiser", func() {
		advertiser := authz.NewActor(uuid.New(), user.RoleAdvertiser)
		s.offers.EXPECT().ByAdvertiser(gomock.Any(), advertiser.ID, int32(queries.DefaultListLimit)).Return(nil, nil).Times(1)

		_, err := s.q.MyOffers(context.Background(), advertiser, 0)

		s.NoError(err)
	})

	s.Run("error: students have no offers", func() {
		_, err := s.q.MyOffers(context.Background(), authz.NewActor(uuid.New(), user.RoleStudent), 0)
		s.ErrorIs(err, queries.ErrOfferListAdvertisersOnly)
	})
}

func (s *OfferQueriesTestSuite) TestPendingOffers() {
	s.Run("moderator reads the queue", func() {
		s.offers.EXPECT().ByStatus(gomock.Any(), offer.StatusPending.String(), int32(50)).Return(nil, nil).Times(1)

		_, err := s.q.PendingOffers(context.Background(), authz.NewActor(uuid.New(), user.RoleModerator), 50)

		s.NoError(err)
	})

	s.Run("error: advertisers cannot", func() {
		_, err := s.q.PendingOffers(context.Background(), authz.NewActor(uuid.New(), user.RoleAdvertiser), 50)
		s.ErrorIs(err, queries.ErrPendingQueueStaffOnly)
	})
}
