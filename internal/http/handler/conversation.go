package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/dto"
	"pathway.app/server/internal/http/middleware"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
)

type ConversationHandler struct {
	messages service.MessageService
}

func NewConversationHandler(messages service.MessageService) *ConversationHandler {
	return &ConversationHandler{messages: messages}
}

// ListMessages returns a conversation's history in chronological order.
// The acting user comes from the verified identity when a bearer token
// was presented, otherwise from the actor_id query parameter.
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	msgs, err := h.messages.List(ctx, conversationID, actorID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"messages": dto.ToMessageResponses(msgs)})
}

// PostMessage is the HTTP side of the single message path; the realtime
// router reaches the same service call.
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// A verified identity pins the sender: the payload cannot speak as
	// someone else.
	if ident, authed := middleware.GetIdentity(c); authed && ident.UserID != req.SenderID {
		respondErr(c, http.StatusForbidden, "sender_id does not match credential")
		return
	}

	msg, err := h.messages.Post(ctx, service.PostMessageInput{
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		SenderRole:     model.SenderRole(req.SenderRole),
		Text:           req.Text,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"message": dto.ToMessageResponse(msg)})
}

func (h *ConversationHandler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	messageID, ok := pathID(c, "msg_id")
	if !ok {
		return
	}

	if err := h.messages.MarkRead(ctx, conversationID, messageID); err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"msg": "message marked read"})
}

// ListByUser returns a client's conversations with request and provider
// summary blocks.
func (h *ConversationHandler) ListByUser(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.messages.ListConversationsByClient(ctx, clientID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	out := make([]dto.ConversationSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToConversationSummaryResponse(r))
	}
	respond(c, http.StatusOK, gin.H{"conversations": out})
}

// ListByProvider returns a provider's conversations with request and
// client summary blocks.
func (h *ConversationHandler) ListByProvider(c *gin.Context) {
	ctx := c.Request.Context()

	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.messages.ListConversationsByProvider(ctx, providerID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	out := make([]dto.ConversationSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToConversationSummaryResponse(r))
	}
	respond(c, http.StatusOK, gin.H{"conversations": out})
}

func (h *ConversationHandler) actorID(c *gin.Context) (int64, bool) {
	if ident, ok := middleware.GetIdentity(c); ok {
		return ident.UserID, true
	}
	actorID, err := strconv.ParseInt(c.Query("actor_id"), 10, 64)
	if err != nil || actorID <= 0 {
		respondErr(c, http.StatusBadRequest, "actor_id is required")
		return 0, false
	}
	return actorID, true
}
