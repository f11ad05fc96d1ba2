//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/favourite"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavouriteCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *txMocks
	uc      commands.FavouriteCommands
	student authz.Actor
	offerID uuid.UUID
}

func (s *FavouriteCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.uc = commands.NewFavouriteUseCase(s.m.uow, clock.NewMockClock(time.Now()))
	s.student = authz.NewActor(uuid.New(), user.RoleStudent)
	s.offerID = uuid.New()
}

func (s *FavouriteCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFavouriteCommandsSuite(t *testing.T) {
	suite.Run(t, new(FavouriteCommandsTestSuite))
}

func (s *FavouriteCommandsTestSuite) expectAdd() {
	s.m.reads.EXPECT().OfferByID(gomock.Any(), s.offerID).
		Return(&shared.OfferSnapshot{ID: s.offerID}, nil).Times(1)
	s.m.favourites.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, f *favourite.Favourite) error {
			s.Equal(s.student.ID, f.StudentID())
			s.Equal(s.offerID, f.OfferID())
			return nil
		}).Times(1)
}

func (s *FavouriteCommandsTestSuite) TestToggleFavourite() {
	s.Run("adds when absent", func() {
		s.m.favourites.EXPECT().Delete(gomock.Any(), nil, s.student.ID, s.offerID).Return(false, nil).Times(1)
		s.expectAdd()

		favourited, err := s.uc.ToggleFavourite(context.Background(), s.student, s.offerID)

		s.Require().NoError(err)
		s.True(favourited)
	})

	s.Run("removes when present", func() {
		s.m.favourites.EXPECT().Delete(gomock.Any(), nil, s.student.ID, s.offerID).Return(true, nil).Times(1)

		favourited, err := s.uc.ToggleFavourite(context.Background(), s.student, s.offerID)

		s.Require().NoError(err)
		s.False(favourited)
	})

	s.Run("error: unknown offer", func() {
		s.m.favourites.EXPECT().Delete(gomock.Any(), nil, s.student.ID, s.offerID).Return(false, nil).Times(1)
		s.m.reads.EXPECT().OfferByID(gomock.Any(), s.offerID).Return(nil, errNoRows).Times(1)

		_, err := s.uc.ToggleFavourite(context.Background(), s.student, s.offerID)

		s.ErrorIs(err, shared.ErrOfferNotFound)
	})

	s.Run("error: students only", func() {
		_, err := s.uc.ToggleFavourite(context.Background(), authz.NewActor(uuid.New(), user.RoleAdvertiser), s.offerID)
		s.ErrorIs(err, commands.ErrFavouritesStudentsOnly)
	})
}

func (s *FavouriteCommandsTestSuite) TestAddFavourite() {
	s.Run("success", func() {
		s.m.reads.EXPECT().FavouriteExists(gomock.Any(), s.student.ID, s.offerID).Return(false, nil).Times(1)
		s.expectAdd()

		s.Require().NoError(s.uc.AddFavourite(context.Background(), s.student, s.offerID))
	})

	s.Run("error: already a favourite", func() {
		s.m.reads.EXPECT().FavouriteExists(gomock.Any(), s.student.ID, s.offerID).Return(true, nil).Times(1)

		err := s.uc.AddFavourite(context.Background(), s.student, s.offerID)

		s.ErrorIs(err, errs.ErrDuplicateFavourite)
		s.True(errs.Is(err, errs.ErrDuplicate))
	})
}

func (s *FavouriteCommandsTestSuite) TestRemoveFavourite() {
	s.Run("success", func() {
		s.m.favourites.EXPECT().Delete(gomock.Any(), nil, s.student.ID, s.offerID).Return(true, nil).Times(1)

		s.Require().NoError(s.uc.RemoveFavourite(context.Background(), s.student, s.offerID))
	})

	s.Run("error: nothing to remove", func() {
		s.m.favourites.EXPECT().Delete(gomock.Any(), nil, s.student.ID, s.offerID).Return(false, nil).Times(1)

		err := s.uc.RemoveFavourite(context.Background(), s.student, s.offerID)

		s.ErrorIs(err, commands.ErrFavouriteNotFound)
	})
}
