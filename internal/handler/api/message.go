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

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary Send message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req reqdto.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.SendMessage(c.Request.Context(), middleware.GetActor(c), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List messages
// @Description Newest first
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param box query string false "all, inbox or sent"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[queries.MessageView]
// @Failure 400 {object} httperr.Response
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	var query reqdto.MessageListQuery
	if !bindQuery(c, &query) {
		return
	}

	items, next, err := h.q.List(c.Request.Context(), middleware.GetActor(c), query.MessageBox(), query.ToCursor(), query.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}

// @Summary Conversation
// @Description Messages exchanged with one user, oldest first
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param userId path string true "Other user ID"
// @Param offer_id query string false "Restrict to one offer"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} queries.MessageView
// @Router /messages/conversations/{userId} [get]
func (h *MessageHandler) Conversation(c *gin.Context) {
	otherID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var query reqdto.ConversationQuery
	if !bindQuery(c, &query) {
		return
	}

	items, err := h.q.Conversation(c.Request.Context(), middleware.GetActor(c), otherID, query.OfferFilter(), query.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if items == nil {
		items = []*queries.MessageView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Mark conversation read
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param userId path string true "Other user ID"
// @Param offer_id query string false "Restrict to one offer"
// @Success 200 {object} resdto.MarkedReadResponse
// @Router /messages/conversations/{userId}/read [post]
func (h *MessageHandler) MarkConversationRead(c *gin.Context) {
	otherID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var query reqdto.ConversationQuery
	if !bindQuery(c, &query) {
		return
	}

	n, err := h.cmds.MarkConversationRead(c.Request.Context(), middleware.GetActor(c), otherID, query.OfferFilter())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MarkedReadResponse{Marked: n})
}

// @Summary Mark message read
// @Description Recipient only
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.MarkRead(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unread count
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	n, err := h.q.UnreadCount(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Unread: n})
}
