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

type CategoryHandler struct {
	cmds commands.CategoryCommands
	q    queries.CategoryQueries
}

func NewCategoryHandler(cmds commands.CategoryCommands, q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{cmds: cmds, q: q}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromCategoryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create category
// @Description Admins only
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} queries.CategoryView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.CreateCategory(c.Request.Context(), middleware.GetActor(c), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}
