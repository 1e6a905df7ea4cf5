package router

import (
	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/handler"
)

// ServiceRequestRouter sets up the request lifecycle routes.
func ServiceRequestRouter(rg *gin.RouterGroup, h *handler.ServiceRequestHandler) {
	requests := rg.Group("/service-requests")
	{
		requests.POST("", h.Create)
		requests.POST("/:id/accept", h.Accept)
		requests.PUT("/:id/complete", h.Complete)
		requests.PUT("/:id/confirm", h.Confirm)
		requests.GET("/:id/conversation", h.GetConversation)
	}
}
