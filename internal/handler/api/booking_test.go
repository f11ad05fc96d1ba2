//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/booking"
	"student-travels/internal/domain/offer"
	"student-travels/internal/domain/user"
	"student-travels/internal/handler/api"
	resdto "student-travels/internal/handler/dto/response"
	"student-travels/internal/handler/middleware"
	"student-travels/internal/handler/validation"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/queries"
	"student-travels/internal/usecase/shared"
	"student-travels/tests/common/builder"
	"student-travels/tests/common/httptest"
	"student-travels/tests/common/testutil"
	commandsmock "student-travels/tests/mock/commands"
	queriesmock "student-travels/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        authz.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = authz.NewActor(uuid.New(), user.RoleStudent)

	group := s.router.Group("/bookings", func(c *gin.Context) {
		middleware.SetActor(c, s.actor)
		c.Next()
	})
	group.POST("", handler.Create)
	group.GET("/mine", handler.Mine)
	group.GET("/received", handler.Received)
	group.GET("/:id", handler.Get)
	group.PUT("/:id/status", handler.UpdateStatus)
	group.POST("/:id/cancel", handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the pending booking", func() {
		result := &commands.CreateBookingResult{
			BookingID:      uuid.New(),
			Status:         booking.StatusPending,
			PricePaidCents: 49900,
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.actor, reqBody.ToCommand()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.BookingID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal(int64(49900), response.PricePaidCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing offer", mutate: testutil.Field("offer_id", nil)},
			{name: "missing phone", mutate: testutil.Field("contact_phone", nil)},
			{name: "phone too long", mutate: testutil.Field("contact_phone", "123456789012345678901")},
			{name: "invalid email", mutate: testutil.Field("contact_email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not a student", commandsError: commands.ErrStudentsOnly, expectedStatus: http.StatusForbidden, expectedMsg: "only students can book offers"},
			{name: "offer missing", commandsError: shared.ErrOfferNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "offer not found"},
			{name: "already booked", commandsError: errs.ErrDuplicateBooking, expectedStatus: http.StatusConflict},
			{name: "offer unavailable", commandsError: offer.ErrOfferNotAvailable, expectedStatus: http.StatusConflict, expectedMsg: "offer is not available for booking"},
			{name: "last spot taken", commandsError: offer.ErrNoSpotsLeft, expectedStatus: http.StatusConflict, expectedMsg: "no spots left"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the booking with the review flag", func() {
		view := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildView()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.OfferTitle, response.OfferTitle)
		s.True(response.CanReview)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: someone else's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.actor, id).Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "booking access denied")
	})
}

func (s *BookingHandlerTestSuite) TestMine() {
	s.Run("success: returns a page with the next cursor", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().BuildView(),
		}
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().MyBookings(gomock.Any(), s.actor, nil, 2).Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine?limit=2", nil, "")

		var response resdto.Page[*resdto.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine?limit=500", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *BookingHandlerTestSuite) TestReceived() {
	s.Run("success: passes the status filter", func() {
		status := "confirmed"
		s.mockQueries.EXPECT().ReceivedBookings(gomock.Any(), s.actor, &status, nil, 0).
			Return([]*queries.BookingView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/received?status=confirmed", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/received?status=archived", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/status"

	s.Run("success: returns the updated booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = id
			b.Status = booking.StatusConfirmed
		}).BuildView()
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), s.actor, id, "confirmed").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.actor, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: status outside the enum never reaches the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "shipped"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not the advertiser", commandsError: commands.ErrBookingStatusDenied, expectedStatus: http.StatusForbidden},
			{name: "terminal state", commandsError: booking.ErrInvalidTransition, expectedStatus: http.StatusConflict},
			{name: "missing booking", commandsError: shared.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), s.actor, id, "completed").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "completed"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.commandsError.Error())
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns the cancelled booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = id
			b.Status = booking.StatusCancelled
		}).BuildView()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.actor, id).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.actor, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
		s.False(response.CanReview)
	})

	s.Run("error: another student's booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.actor, id).Return(booking.ErrNotBookingStudent).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "booking belongs to another student")
	})
}
