package router

import (
	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/handler"
)

// ConversationRouter sets up the HTTP message gateway routes.
func ConversationRouter(rg *gin.RouterGroup, h *handler.ConversationHandler) {
	conversations := rg.Group("/conversations")
	{
		conversations.GET("/:id/messages", h.ListMessages)
		conversations.POST("/:id/messages", h.PostMessage)
		conversations.PUT("/:id/messages/:msg_id/read", h.MarkRead)
	}
}
