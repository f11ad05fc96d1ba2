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

type FavouriteHandler struct {
	cmds commands.FavouriteCommands
	q    queries.FavouriteQueries
}

func NewFavouriteHandler(cmds commands.FavouriteCommands, q queries.FavouriteQueries) *FavouriteHandler {
	return &FavouriteHandler{cmds: cmds, q: q}
}

// @Summary My favourites
// @Tags favourites
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum rows"
// @Success 200 {array} queries.FavouriteItem
// @Failure 403 {object} httperr.Response
// @Router /favourites [get]
func (h *FavouriteHandler) List(c *gin.Context) {
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	items, err := h.q.MyFavourites(c.Request.Context(), middleware.GetActor(c), page.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if items == nil {
		items = []*queries.FavouriteItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Toggle favourite
// @Tags favourites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.FavouriteToggleResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/favourite/toggle [post]
func (h *FavouriteHandler) Toggle(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	added, err := h.cmds.ToggleFavourite(c.Request.Context(), middleware.GetActor(c), offerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FavouriteToggleResponse{Favourite: added})
}

// @Summary Add favourite
// @Tags favourites
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/favourite [put]
func (h *FavouriteHandler) Add(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.AddFavourite(c.Request.Context(), middleware.GetActor(c), offerID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove favourite
// @Tags favourites
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/favourite [delete]
func (h *FavouriteHandler) Remove(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.RemoveFavourite(c.Request.Context(), middleware.GetActor(c), offerID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
