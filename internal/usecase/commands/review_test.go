//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/booking"
	"student-travels/internal/domain/review"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/shared"
	"student-travels/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *txMocks
	uc      commands.ReviewCommands
	student authz.Actor
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.uc = commands.NewReviewUseCase(s.m.uow, clock.NewMockClock(time.Now()))
	s.student = authz.NewActor(uuid.New(), user.RoleStudent)
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) completedBooking() *shared.LockedBooking {
	return builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.StudentID = s.student.ID }).
		WithStatus(booking.StatusCompleted).
		BuildLocked()
}

func (s *ReviewCommandsTestSuite) TestCreateReview() {
	s.Run("success: completed booking gets one review", func() {
		locked := s.completedBooking()
		var stored *review.Review

		s.m.bookings.EXPECT().FindForUpdate(gomock.Any(), nil, locked.Booking.ID()).Return(locked, nil).Times(1)
		s.m.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), locked.Booking.ID()).Return(false, nil).Times(1)
		s.m.reviews.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r *review.Review) error {
				stored = r
				return nil
			}).Times(1)

		id, err := s.uc.CreateReview(context.Background(), s.student, commands.CreateReviewRequest{
			BookingID: locked.Booking.ID(),
			Rating:    4,
			Comment:   "  Great guides  ",
		})

		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(stored.ID(), id)
		s.Equal(4, stored.Rating().Value())
		s.Equal("Great guides", stored.Comment().String())
	})

	s.Run("error: rating out of range never touches storage", func() {
		for _, rating := range []int{0, 6, -1} {
			_, err := s.uc.CreateReview(context.Background(), s.student, commands.CreateReviewRequest{
				BookingID: uuid.New(),
				Rating:    rating,
			})
			s.ErrorIs(err, review.ErrInvalidRating)
		}
	})

	s.Run("error: only students review", func() {
		_, err := s.uc.CreateReview(context.Background(), authz.NewActor(uuid.New(), user.RoleAdvertiser), commands.CreateReviewRequest{
			BookingID: uuid.New(),
			Rating:    5,
		})
		s.ErrorIs(err, commands.ErrStudentsOnly)
	})

	s.Run("error: booking not completed", func() {
		for _, status := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled} {
			locked := builder.NewBookingBuilder().
				With(func(b *builder.BookingBuilder) { b.StudentID = s.student.ID }).
				WithStatus(status).
				BuildLocked()
			s.m.bookings.EXPECT().FindForUpdate(gomock.Any(), nil, locked.Booking.ID()).Return(locked, nil).Times(1)

			_, err := s.uc.CreateReview(context.Background(), s.student, commands.CreateReviewRequest{
				BookingID: locked.Booking.ID(),
				Rating:    5,
			})

			s.ErrorIs(err, booking.ErrNotCompleted, "status %s", status)
			s.True(errs.Is(err, errs.ErrInvalidState))
		}
	})

	s.Run("error: someone else's booking", func() {
		locked := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildLocked()
		s.m.bookings.EXPECT().FindForUpdate(gomock.Any(), nil, locked.Booking.ID()).Return(locked, nil).Times(1)

		_, err := s.uc.CreateReview(context.Background(), s.student, commands.CreateReviewRequest{
			BookingID: locked.Booking.ID(),
			Rating:    5,
		})

		s.ErrorIs(err, booking.ErrNotBookingStudent)
	})

	s.Run("error: second review of the same booking", func() {
		locked := s.completedBooking()
		s.m.bookings.EXPECT().FindForUpdate(gomock.Any(), nil, locked.Booking.ID()).Return(locked, nil).Times(1)
		s.m.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), locked.Booking.ID()).Return(true, nil).Times(1)

		_, err := s.uc.CreateReview(context.Background(), s.student, commands.CreateReviewRequest{
			BookingID: locked.Booking.ID(),
			Rating:    3,
		})

		s.ErrorIs(err, errs.ErrDuplicateReview)
	})

	s.Run("error: unknown booking", func() {
		id := uuid.New()
		s.m.bookings.EXPECT().FindForUpdate(gomock.Any(), nil, id).Return(nil, errNoRows).Times(1)

		_, err := s.uc.CreateReview(context.Background(), s.student, commands.CreateReviewRequest{BookingID: id, Rating: 5})

		s.ErrorIs(err, shared.ErrBookingNotFound)
	})
}
