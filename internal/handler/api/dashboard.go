package api

import (
	"net/http"

	"student-travels/internal/handler/httperr"
	"student-travels/internal/handler/middleware"
	"student-travels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard
// @Description Summary for the caller's role
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} httperr.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	view, err := h.q.Dashboard(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
