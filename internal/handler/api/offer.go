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

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Search offers
// @Description Approved offers, newest first
// @Tags offers
// @Produce json
// @Param q query string false "Text matched against title, description and destination"
// @Param category_id query string false "Category ID"
// @Param min_price_cents query int false "Minimum price in cents"
// @Param max_price_cents query int false "Maximum price in cents"
// @Param start_from query string false "Earliest start date (YYYY-MM-DD)"
// @Param end_by query string false "Latest end date (YYYY-MM-DD)"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.OfferCardResponse]
// @Failure 400 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) Search(c *gin.Context) {
	var query reqdto.OfferSearchQuery
	if !bindQuery(c, &query) {
		return
	}

	items, next, err := h.q.Search(c.Request.Context(), query.ToFilters(), query.ToCursor(), query.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOfferList(items)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resp, next))
}

// @Summary Featured offers
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.OfferCardResponse
// @Router /offers/featured [get]
func (h *OfferHandler) Featured(c *gin.Context) {
	items, err := h.q.Featured(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOfferList(items)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get offer
// @Description Approved offers are public; other states are visible to the owner and staff
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.q.GetOffer(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOfferDetail(detail)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create offer
// @Description Advertisers only; the offer starts pending moderation
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	actor := middleware.GetActor(c)
	id, err := h.cmds.CreateOffer(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondDetail(c, http.StatusCreated, id)
}

// @Summary Edit offer
// @Description Owner or staff; editing a rejected offer sends it back to moderation
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body reqdto.EditOfferRequest true "Fields to change"
// @Success 200 {object} resdto.OfferDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [patch]
func (h *OfferHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.EditOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.EditOffer(c.Request.Context(), middleware.GetActor(c), id, req.ToCommand()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondDetail(c, http.StatusOK, id)
}

// @Summary Moderate offer
// @Description Moderators and admins set approved or rejected
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/status [put]
func (h *OfferHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOfferStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.UpdateOfferStatus(c.Request.Context(), middleware.GetActor(c), id, req.Status); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Feature offer
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetFeaturedRequest true "Featured flag"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/featured [put]
func (h *OfferHandler) SetFeatured(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetFeaturedRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.SetFeatured(c.Request.Context(), middleware.GetActor(c), id, *req.Featured); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary My offers
// @Description Every offer of the calling advertiser, any status
// @Tags offers
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.OfferCardResponse
// @Failure 403 {object} httperr.Response
// @Router /offers/mine [get]
func (h *OfferHandler) Mine(c *gin.Context) {
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	items, err := h.q.MyOffers(c.Request.Context(), middleware.GetActor(c), page.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOfferList(items)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Moderation queue
// @Tags offers
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.OfferCardResponse
// @Failure 403 {object} httperr.Response
// @Router /offers/pending [get]
func (h *OfferHandler) Pending(c *gin.Context) {
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	items, err := h.q.PendingOffers(c.Request.Context(), middleware.GetActor(c), page.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOfferList(items)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OfferHandler) respondDetail(c *gin.Context, status int, id uuid.UUID) {
	detail, err := h.q.GetOffer(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOfferDetail(detail)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(status, resp)
}
