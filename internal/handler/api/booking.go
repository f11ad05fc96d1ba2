package api

import (
	"net/http"

	reqdto "student-travels/internal/handler/dto/request"
	resdto "student-travels/internal/handler/dto/response"
	"student-travels/internal/handler/httperr"
	"student-travels/internal/handler/middleware"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book an offer
// @Description Students only. Takes one spot and snapshots the current price.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), middleware.GetActor(c), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Visible to the student, the offer's advertiser and staff
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary My bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.BookingResponse]
// @Router /bookings/mine [get]
func (h *BookingHandler) Mine(c *gin.Context) {
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	views, next, err := h.q.MyBookings(c.Request.Context(), middleware.GetActor(c), page.ToCursor(), page.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resp, next))
}

// @Summary Bookings received
// @Description Bookings on the calling advertiser's offers
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by booking status"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.BookingResponse]
// @Failure 403 {object} httperr.Response
// @Router /bookings/received [get]
func (h *BookingHandler) Received(c *gin.Context) {
	var query reqdto.ReceivedBookingsQuery
	if !bindQuery(c, &query) {
		return
	}

	views, next, err := h.q.ReceivedBookings(c.Request.Context(), middleware.GetActor(c), query.StatusFilter(), query.ToCursor(), query.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resp, next))
}

// @Summary Booking statistics
// @Description Admins only
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.BookingStats
// @Failure 403 {object} httperr.Response
// @Router /bookings/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Update booking status
// @Description The offer's advertiser or staff. Cancelling restores the spot.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	actor := middleware.GetActor(c)
	if err := h.cmds.UpdateBookingStatus(c.Request.Context(), actor, id, req.Status); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondBooking(c, id)
}

// @Summary Cancel booking
// @Description The booking's student only
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondBooking(c, id)
}

func (h *BookingHandler) respondBooking(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetBooking(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
