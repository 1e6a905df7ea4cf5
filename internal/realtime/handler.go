package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"pathway.app/server/common/logger"
	"pathway.app/server/internal/access"
	"pathway.app/server/internal/http/dto"
	"pathway.app/server/internal/identity"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
)

// Handler upgrades websocket connections and routes their events. It
// reaches the same MessageService as the HTTP gateway, so both
// transports share one authorization and persistence path.
type Handler struct {
	hub      *Hub
	messages service.MessageService
	identity identity.Provider

	originPatterns []string
}

func NewHandler(hub *Hub, messages service.MessageService, idProvider identity.Provider, originPatterns []string) *Handler {
	return &Handler{
		hub:            hub,
		messages:       messages,
		identity:       idProvider,
		originPatterns: originPatterns,
	}
}

// Serve is the gin endpoint for the websocket upgrade.
func (h *Handler) Serve(c *gin.Context) {
	opts := &websocket.AcceptOptions{}
	if len(h.originPatterns) > 0 {
		opts.OriginPatterns = h.originPatterns
	}

	ws, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "websocket upgrade rejected", "error", err)
		return
	}

	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{Component: "pathway.realtime"})

	// Connecting stays open to anonymous clients, but a presented bearer
	// token pins the connection to one identity: every later join and
	// send must speak as that user.
	var pinned *identity.Identity
	if token := h.connectionToken(c); token != "" {
		pinned, err = h.identity.Authenticate(ctx, token)
		if err != nil {
			_ = ws.Close(websocket.StatusPolicyViolation, "invalid credential")
			return
		}
		ctx = logger.WithLogFields(ctx, logger.LogFields{ActorID: logger.Ptr(pinned.UserID)})
	}

	cl := newClient(ws)
	defer h.hub.RemoveAll(cl)
	defer cl.close(websocket.StatusNormalClosure, "closed")

	if err := cl.write(ctx, NewFrame(EventConnected, nil)); err != nil {
		return
	}

	h.readLoop(ctx, cl, ws, pinned)
}

func (h *Handler) connectionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return c.Query("token")
}

func (h *Handler) readLoop(ctx context.Context, c conn, ws *websocket.Conn, pinned *identity.Identity) {
	for {
		_, raw, err := ws.Read(ctx)
		if err != nil {
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.sendError(ctx, c, "malformed frame")
			continue
		}

		h.dispatch(ctx, c, frame, pinned)
	}
}

// dispatch opens one span per event; the upgrade's HTTP span ended long
// before these frames arrive.
func (h *Handler) dispatch(ctx context.Context, c conn, frame Frame, pinned *identity.Identity) {
	sc := logger.StartSpan(ctx, "realtime."+frame.Event)
	defer sc.End()
	ctx = sc.Context()

	switch frame.Event {
	case EventJoinConversation:
		h.handleJoin(ctx, c, frame.Data, pinned)
	case EventLeaveConversation:
		h.handleLeave(ctx, c, frame.Data)
	case EventSendMessage:
		h.handleSend(ctx, c, frame.Data, pinned)
	default:
		h.sendError(ctx, c, "unknown event: "+frame.Event)
	}
}

// handleJoin admits the connection to a conversation room after the
// same participant check the HTTP gateway applies.
func (h *Handler) handleJoin(ctx context.Context, c conn, data json.RawMessage, pinned *identity.Identity) {
	var payload joinPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ConversationID == 0 || payload.UserID == 0 {
		h.sendError(ctx, c, "conversation_id and user_id are required")
		return
	}
	if pinned != nil && pinned.UserID != payload.UserID {
		h.sendError(ctx, c, "user_id does not match credential")
		return
	}

	membership, err := h.messages.Membership(ctx, payload.ConversationID)
	if err != nil {
		h.sendServiceError(ctx, c, err)
		return
	}
	if !access.CanAccess(membership, payload.UserID) {
		slog.WarnContext(ctx, "room join rejected",
			"conversation_id", payload.ConversationID,
			"user_id", payload.UserID,
		)
		h.sendError(ctx, c, "not a participant in this conversation")
		return
	}

	h.hub.Join(payload.ConversationID, c)
	_ = c.write(ctx, NewFrame(EventJoinedConversation, roomPayload{ConversationID: payload.ConversationID}))
}

func (h *Handler) handleLeave(ctx context.Context, c conn, data json.RawMessage) {
	var payload leavePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ConversationID == 0 {
		h.sendError(ctx, c, "conversation_id is required")
		return
	}

	h.hub.Leave(payload.ConversationID, c)
	_ = c.write(ctx, NewFrame(EventLeftConversation, roomPayload{ConversationID: payload.ConversationID}))
}

// handleSend persists through the shared message path and fans the
// stored message out to the room, sender included.
func (h *Handler) handleSend(ctx context.Context, c conn, data json.RawMessage, pinned *identity.Identity) {
	var payload sendPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.sendError(ctx, c, "malformed send_message payload")
		return
	}
	if pinned != nil && pinned.UserID != payload.SenderID {
		h.sendError(ctx, c, "sender_id does not match credential")
		return
	}

	msg, err := h.messages.Post(ctx, service.PostMessageInput{
		ConversationID: payload.ConversationID,
		SenderID:       payload.SenderID,
		SenderRole:     model.SenderRole(payload.SenderRole),
		Text:           payload.Text,
	})
	if err != nil {
		h.sendServiceError(ctx, c, err)
		return
	}

	h.hub.Broadcast(ctx, msg.ConversationID, NewFrame(EventNewMessage, dto.ToMessageResponse(msg)))
}

func (h *Handler) sendError(ctx context.Context, c conn, message string) {
	_ = c.write(ctx, NewFrame(EventError, errorPayload{Message: message}))
}

// sendServiceError translates the service taxonomy into error events;
// internals never reach the wire.
func (h *Handler) sendServiceError(ctx context.Context, c conn, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.sendError(ctx, c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		h.sendError(ctx, c, "conversation not found")
	case errors.Is(err, service.ErrForbidden):
		h.sendError(ctx, c, "not a participant in this conversation")
	case errors.Is(err, service.ErrInvalidState):
		h.sendError(ctx, c, err.Error())
	default:
		slog.ErrorContext(ctx, "realtime operation failed", "error", err)
		h.sendError(ctx, c, "internal error")
	}
}
