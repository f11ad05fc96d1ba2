//go:build unit

package queries_test

import (
	"context"
	"testing"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/booking"
	"student-travels/internal/domain/user"
	"student-travels/internal/infra"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/ptr"
	"student-travels/internal/usecase/queries"
	"student-travels/internal/usecase/shared"
	"student-travels/tests/common/builder"
	queriesmock "student-travels/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockBookingReadStore
	q     queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.q = queries.NewBookingQueries(s.store)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildView()

	testCases := []struct {
		name    string
		actor   authz.Actor
		allowed bool
	}{
		{name: "booking student", actor: authz.NewActor(view.StudentID, user.RoleStudent), allowed: true},
		{name: "offer advertiser", actor: authz.NewActor(view.AdvertiserID, user.RoleAdvertiser), allowed: true},
		{name: "moderator", actor: authz.NewActor(uuid.New(), user.RoleModerator), allowed: true},
		{name: "other student", actor: authz.NewActor(uuid.New(), user.RoleStudent), allowed: false},
		{name: "other advertiser", actor: authz.NewActor(uuid.New(), user.RoleAdvertiser), allowed: false},
		{name: "anonymous", actor: authz.Anonymous(), allowed: false},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

			got, err := s.q.GetBooking(context.Background(), tc.actor, view.ID)

			if tc.allowed {
				s.Require().NoError(err)
				s.Equal(view, got)
				return
			}
			s.ErrorIs(err, queries.ErrBookingAccess)
		})
	}

	s.Run("unknown booking", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("booking", pgx.ErrNoRows)).Times(1)

		_, err := s.q.GetBooking(context.Background(), authz.NewActor(uuid.New(), user.RoleAdmin), id)

		s.ErrorIs(err, shared.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestMyBookings() {
	s.Run("pages by booked_at", func() {
		student := authz.NewActor(uuid.New(), user.RoleStudent)
		rows := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().BuildView(),
		}
		s.store.EXPECT().ByStudent(gomock.Any(), student.ID, nil, int32(2)).Return(rows, nil).Times(1)

		items, next, err := s.q.MyBookings(context.Background(), student, nil, 1)

		s.Require().NoError(err)
		s.Len(items, 1)
		s.Require().NotNil(next)
	})

	s.Run("error: anonymous", func() {
		_, _, err := s.q.MyBookings(context.Background(), authz.Anonymous(), nil, 10)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})
}

func (s *BookingQueriesTestSuite) TestReceivedBookings() {
	advertiser := authz.NewActor(uuid.New(), user.RoleAdvertiser)

	s.Run("status filter passes through", func() {
		status := ptr.Of(booking.StatusConfirmed.String())
		s.store.EXPECT().ByAdvertiser(gomock.Any(), advertiser.ID, status, nil, int32(queries.DefaultListLimit+1)).Return(nil, nil).Times(1)

		items, next, err := s.q.ReceivedBookings(context.Background(), advertiser, status, nil, 0)

		s.Require().NoError(err)
		s.Empty(items)
		s.Nil(next)
	})

	s.Run("error: unknown status", func() {
		_, _, err := s.q.ReceivedBookings(context.Background(), advertiser, ptr.Of("refunded"), nil, 0)
		s.ErrorIs(err, booking.ErrInvalidStatus)
	})

	s.Run("error: students receive nothing", func() {
		_, _, err := s.q.ReceivedBookings(context.Background(), authz.NewActor(uuid.New(), user.RoleStudent), nil, nil, 0)
		s.ErrorIs(err, queries.ErrReceivedBookingsDenied)
	})
}

func (s *BookingQueriesTestSuite) TestStats() {
	s.Run("admin", func() {
		stats := &queries.BookingStats{}
		s.store.EXPECT().Stats(gomock.Any(), nil).Return(stats, nil).Times(1)

		got, err := s.q.Stats(context.Background(), authz.NewActor(uuid.New(), user.RoleAdmin))

		s.Require().NoError(err)
		s.Same(stats, got)
	})

	s.Run("error: moderators are not admins", func() {
		_, err := s.q.Stats(context.Background(), authz.NewActor(uuid.New(), user.RoleModerator))
		s.ErrorIs(err, queries.ErrBookingStatsDenied)
	})
}
