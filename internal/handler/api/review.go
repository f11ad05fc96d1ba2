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
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a completed booking, once
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateReview(c.Request.Context(), middleware.GetActor(c), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List offer reviews
// @Description Newest first, with the offer's rating summary
// @Tags reviews
// @Produce json
// @Param id path string true "Offer ID"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OfferReviewsResponse
// @Failure 400 {object} httperr.Response
// @Router /offers/{id}/reviews [get]
func (h *ReviewHandler) ListByOffer(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	items, next, err := h.q.ListByOffer(c.Request.Context(), offerID, page.ToCursor(), page.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	rating, err := h.q.OfferRating(c.Request.Context(), offerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromReviewList(items, next, rating)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
