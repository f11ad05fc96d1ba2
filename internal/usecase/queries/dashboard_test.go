//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/ptr"
	"student-travels/internal/usecase/queries"
	"student-travels/tests/common/builder"
	queriesmock "student-travels/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const recent = int32(5)

type DashboardQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	users      *queriesmock.MockUserReadStore
	offers     *queriesmock.MockOfferReadStore
	bookings   *queriesmock.MockBookingReadStore
	favourites *queriesmock.MockFavouriteReadStore
	messages   *queriesmock.MockMessageReadStore
	q          queries.DashboardQueries
}

func (s *DashboardQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.offers = queriesmock.NewMockOfferReadStore(s.ctrl)
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.favourites = queriesmock.NewMockFavouriteReadStore(s.ctrl)
	s.messages = queriesmock.NewMockMessageReadStore(s.ctrl)
	s.q = queries.NewDashboardQueries(s.users, s.offers, s.bookings, s.favourites, s.messages,
		clock.NewMockClock(time.Now()))
}

func (s *DashboardQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDashboardQueriesSuite(t *testing.T) {
	suite.Run(t, new(DashboardQueriesTestSuite))
}

func (s *DashboardQueriesTestSuite) TestAnonymous() {
	_, err := s.q.Dashboard(context.Background(), authz.Anonymous())
	s.ErrorIs(err, errs.ErrUnauthenticated)
}

func (s *DashboardQueriesTestSuite) TestStudent() {
	actor := authz.NewActor(uuid.New(), user.RoleStudent)

	s.Run("collects every section", func() {
		item := builder.NewOfferBuilder().AsApproved().BuildListItem()
		item.IsAvailable = false
		fav := &queries.FavouriteItem{FavouriteID: uuid.New(), Offer: *item}
		booking := builder.NewBookingBuilder().BuildView()

		s.bookings.EXPECT().ByStudent(gomock.Any(), actor.ID, nil, recent).Return([]*queries.BookingView{booking}, nil)
		s.favourites.EXPECT().ByStudent(gomock.Any(), actor.ID, recent).Return([]*queries.FavouriteItem{fav}, nil)
		s.messages.EXPECT().UnreadCount(gomock.Any(), actor.ID).Return(int64(3), nil)
		s.bookings.EXPECT().CountByStudent(gomock.Any(), actor.ID).Return(int64(7), nil)

		view, err := s.q.Dashboard(context.Background(), actor)

		s.Require().NoError(err)
		s.Equal("student", view.Role)
		s.Nil(view.Advertiser)
		s.Require().NotNil(view.Student)
		s.Len(view.Student.RecentBookings, 1)
		s.Equal(int64(3), view.Student.UnreadMessages)
		s.Equal(int64(7), view.Student.TotalBookings)
		s.True(view.Student.Favourites[0].Offer.IsAvailable, "availability is recomputed")
	})

	s.Run("any failing read fails the dashboard", func() {
		s.bookings.EXPECT().ByStudent(gomock.Any(), actor.ID, nil, recent).Return(nil, nil).AnyTimes()
		s.favourites.EXPECT().ByStudent(gomock.Any(), actor.ID, recent).Return(nil, nil).AnyTimes()
		s.messages.EXPECT().UnreadCount(gomock.Any(), actor.ID).Return(int64(0), assert.AnError)
		s.bookings.EXPECT().CountByStudent(gomock.Any(), actor.ID).Return(int64(0), nil).AnyTimes()

		_, err := s.q.Dashboard(context.Background(), actor)

		s.ErrorIs(err, assert.AnError)
	})
}

func (s *DashboardQueriesTestSuite) TestAdvertiser() {
	actor := authz.NewActor(uuid.New(), user.RoleAdvertiser)
	counts := &queries.AdvertiserOfferCounts{Total: 4, Pending: 1, Approved: 2, Rejected: 1}
	pending := builder.NewOfferBuilder().BuildListItem()
	pending.IsAvailable = true

	s.offers.EXPECT().AdvertiserCounts(gomock.Any(), actor.ID).Return(counts, nil)
	s.offers.EXPECT().ByAdvertiser(gomock.Any(), actor.ID, recent).Return([]*queries.OfferListItem{pending}, nil)
	s.bookings.EXPECT().ByAdvertiser(gomock.Any(), actor.ID, nil, nil, recent).Return(nil, nil)
	s.messages.EXPECT().UnreadCount(gomock.Any(), actor.ID).Return(int64(1), nil)

	view, err := s.q.Dashboard(context.Background(), actor)

	s.Require().NoError(err)
	s.Require().NotNil(view.Advertiser)
	s.Equal(*counts, view.Advertiser.OfferCounts)
	s.False(view.Advertiser.RecentOffers[0].IsAvailable, "pending offers are never available")
	s.Equal(int64(1), view.Advertiser.UnreadMessages)
}

func (s *DashboardQueriesTestSuite) TestModerator() {
	actor := authz.NewActor(uuid.New(), user.RoleModerator)
	s.offers.EXPECT().ByStatus(gomock.Any(), "pending", int32(queries.DefaultListLimit)).
		Return([]*queries.OfferListItem{builder.NewOfferBuilder().BuildListItem()}, nil)
	s.messages.EXPECT().UnreadCount(gomock.Any(), actor.ID).Return(int64(0), nil)

	view, err := s.q.Dashboard(context.Background(), actor)

	s.Require().NoError(err)
	s.Require().NotNil(view.Moderator)
	s.Len(view.Moderator.PendingOffers, 1)
	s.Nil(view.Admin)
}

func (s *DashboardQueriesTestSuite) TestAdmin() {
	actor := authz.NewActor(uuid.New(), user.RoleAdmin)
	stats := &queries.BookingStats{Total: 10, Pending: 2, Confirmed: 3, Cancelled: 4, Completed: 1}

	s.offers.EXPECT().CountByStatus(gomock.Any(), ptr.Of("pending")).Return(int64(2), nil)
	s.offers.EXPECT().CountByStatus(gomock.Any(), nil).Return(int64(9), nil)
	s.bookings.EXPECT().Stats(gomock.Any(), nil).Return(stats, nil)
	s.users.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

	view, err := s.q.Dashboard(context.Background(), actor)

	s.Require().NoError(err)
	s.Equal(&queries.AdminDashboard{
		PendingOfferCount: 2,
		BookingStats:      *stats,
		TotalUsers:        42,
		TotalOffers:       9,
	}, view.Admin)
}
